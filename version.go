package uniunit

// Version exposes the version of the library.
const Version = "2.0.0"
