// iconforge — generates the carbon-tracker application icon.
//
// Usage:
//
//	iconforge
//
// Writes assets/icons/app_icon.png (512x512 RGBA). The assets/icons
// directory must already exist; re-running overwrites the file with
// identical content.
package main

import (
	"fmt"
	"os"

	"github.com/ecotrack/iconforge/pkg/icon"
)

const outputPath = "assets/icons/app_icon.png"

func main() {
	img := icon.Render()

	if err := icon.WritePNG(outputPath, img); err != nil {
		fatal(err)
	}

	fmt.Printf("Generated app icon: %s\n", outputPath)
	fmt.Printf("Icon size: %dx%dpx\n", icon.Size, icon.Size)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
