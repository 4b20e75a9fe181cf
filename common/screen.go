package common

// Base resolution used before a level set is loaded.
const (
	BaseWidth  = 800
	BaseHeight = 600
)
