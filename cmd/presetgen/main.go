package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/milk9111/scenedemo/preset"
)

func main() {
	script := flag.String("script", "", "tengo script path, or the name of a bundled script")
	name := flag.String("name", "", "preset name to save under (defaults to the script name)")
	dir := flag.String("dir", "presets", "preset directory")
	timeout := flag.Duration("timeout", 5*time.Second, "script run timeout")
	list := flag.Bool("list", false, "list bundled scripts and saved presets")
	flag.Parse()

	if *list {
		if err := printList(*dir); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *script == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *name == "" {
		*name = baseName(*script)
	}

	src, err := readScript(*script)
	if err != nil {
		log.Fatalf("presetgen: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	descriptors, err := preset.FromScript(ctx, src)
	if err != nil {
		log.Fatalf("presetgen: %v", err)
	}
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			log.Printf("warning: %s: %v", d.ID, err)
		}
	}

	store, err := preset.NewFileStore(*dir)
	if err != nil {
		log.Fatalf("presetgen: %v", err)
	}
	if err := preset.Save(store, *name, descriptors); err != nil {
		log.Fatalf("presetgen: %v", err)
	}
	fmt.Printf("saved %d animations as %q in %s\n", len(descriptors), *name, *dir)
}

// readScript prefers a file on disk and falls back to the bundled scripts.
func readScript(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	data, embErr := preset.LoadScript(path)
	if embErr != nil {
		return nil, fmt.Errorf("script %s not found on disk or bundled", path)
	}
	return data, nil
}

func printList(dir string) error {
	fmt.Println("bundled scripts:")
	for _, s := range preset.BundledScripts() {
		fmt.Printf("  %s\n", s)
	}
	store, err := preset.NewFileStore(dir)
	if err != nil {
		return err
	}
	names, err := preset.Names(store)
	if err != nil {
		return err
	}
	fmt.Printf("presets in %s:\n", dir)
	for _, n := range names {
		fmt.Printf("  %s\n", n)
	}
	return nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
