// Package translation translates text between languages identified by
// ISO-639-1 codes. The default back end calls the public Google Translate
// endpoint; OpenAI and Gemini back ends are also available.
package translation
