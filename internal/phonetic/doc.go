// Package phonetic renders Indic text as Latin-letter phonetics for
// language learners. The default romanizer follows the ITRANS scheme and
// runs in-process; an OpenAI-backed romanizer and a TTL cache decorator
// are also provided.
package phonetic
