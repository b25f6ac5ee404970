package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ChronoRixun/devyan/src"
)

func main() {
	ctx := context.Background()

	fmt.Println("⚡ Initializing Devyan...")

	cfg := src.LoadConfig()
	if err := src.RunTUI(ctx, cfg); err != nil {
		fmt.Println("❌ Error:", err)
		os.Exit(1)
	}
}
