package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"hwview/internal/hardware"
)

func main() {
	jsonOut := flag.Bool("json", false, "print the snapshot as JSON")
	flag.Parse()

	ctx := context.Background()
	snap := hardware.Collect(ctx, hardware.NewInventory())

	if *jsonOut {
		b, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
		return
	}

	fmt.Println("OS:  " + hardware.OSDescription(ctx))
	fmt.Println("CPU: " + snap.CPU)
	fmt.Println("GPU: " + snap.GPU)
	fmt.Println("RAM: " + snap.RAM)
}
