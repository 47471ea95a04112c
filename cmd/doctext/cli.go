package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path string `arg:"" name:"file_path" help:"Document or image to extract text from"`
}
