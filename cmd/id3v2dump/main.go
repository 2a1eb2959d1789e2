// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

// Command id3v2dump prints every frame of the ID3v2.4 tags found in
// its arguments. Presentation and file handling live here, outside
// the decoder itself.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/go-audiotag/id3v2"
)

var workers = flag.Int("workers", 4, "number of files to process concurrently")

func dump(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := id3v2.Open(f)
	if err != nil {
		return err
	}

	for _, w := range p.Warnings() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, w)
	}

	fmt.Println(path)

	for {
		frame, ferr, ok := p.Next()
		if !ok {
			break
		}

		if ferr != nil {
			fmt.Fprintf(os.Stderr, "  %v\n", ferr)
			continue
		}

		fmt.Printf("  %s: %#v\n", frame.ID, frame.Data)
	}

	return nil
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Usage: id3v2dump [-workers N] <file> [<file> ...]")
		os.Exit(1)
	}

	paths := make(chan string, *workers)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for path := range paths {
				if err := dump(path); err != nil {
					fmt.Fprintf(os.Stderr, "<%s>: %v\n", path, err)
				}
			}
		}()
	}

	for _, path := range flag.Args() {
		paths <- path
	}
	close(paths)

	wg.Wait()
}
