// Package script converts text between Indic writing systems without
// translating it, e.g. Kannada words rendered in Gurmukhi letters. It ships
// an in-process converter built on the shared Brahmic Unicode block layout
// and a client for the Aksharamukha web API.
package script
