// Package models lists the OpenAI models the openai translation,
// phonetic and speech back ends can use with the configured API key.
package models
