package internal

// Version is the kannadacards release version.
const Version = "0.3.0"
