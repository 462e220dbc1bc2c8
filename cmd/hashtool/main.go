package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/colorstring"

	"HashCompare/internal/compare"
	"HashCompare/internal/digest"
	"HashCompare/internal/input"
	"HashCompare/internal/progress"
	"HashCompare/internal/prompt"
)

// Files at least this large get a progress bar while hashing.
const progressThreshold = 8 << 20

func main() {
	p := prompt.New()
	fmt.Println("Hashing Function Demo")
	fmt.Println()

	for {
		mode, err := p.Select("Choose hashing mode", []string{
			"Text Hashing", "File Hashing", "Compare Hashes",
		})
		if err != nil {
			quit(err)
		}

		switch mode {
		case 0:
			runSingle(p, false)
		case 1:
			runSingle(p, true)
		case 2:
			runCompare(p)
		}

		again, err := p.Select("What next", []string{"Continue Hashing", "Exit"})
		if err != nil || again == 1 {
			fmt.Println("hope you learned something!")
			return
		}
		fmt.Println()
	}
}

func quit(err error) {
	if !errors.Is(err, prompt.ErrAborted) && !errors.Is(err, io.EOF) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println("hope you learned something!")
	os.Exit(0)
}

func chooseAlgorithm(p *prompt.Prompter) (digest.Algorithm, error) {
	algos := digest.Algorithms()
	labels := make([]string, len(algos))
	for i, a := range algos {
		labels[i] = a.String()
	}
	idx, err := p.Select("Choose a hashing algorithm", labels)
	if err != nil {
		return 0, err
	}
	return algos[idx], nil
}

func readSource(p *prompt.Prompter, file bool, label string) (input.Source, error) {
	line, err := p.ReadLine(label)
	if err != nil {
		return input.Source{}, err
	}
	if file {
		return input.File(line), nil
	}
	return input.Literal(line), nil
}

// resolve buffers the source's payload, rendering a progress bar for
// large files.
func resolve(src input.Source) ([]byte, error) {
	if src.Kind == input.KindFile {
		total, err := input.Stat(src)
		if err != nil {
			return nil, err
		}
		if total >= progressThreshold {
			bar := progress.New(total)
			defer bar.Close()
			return input.ResolveProgress(src, bar.AddBytes)
		}
	}
	return input.Resolve(src)
}

func runSingle(p *prompt.Prompter, file bool) {
	label := "Enter text to hash"
	if file {
		label = "Enter file path to hash"
	}
	src, err := readSource(p, file, label)
	if err != nil {
		quit(err)
	}

	algo, err := chooseAlgorithm(p)
	if err != nil {
		quit(err)
	}

	payload, err := resolve(src)
	if err != nil {
		colorstring.Printf("[red]Error: %v\n", err)
		return
	}

	fmt.Printf("\nInput: '%s'\n", src.Display())
	fmt.Printf("Type: %s\n", src.Describe())
	fmt.Printf("Algorithm: %s\n", algo)
	fmt.Printf("Output Hash: %s\n\n", algo.Sum(payload))
	colorstring.Println("[yellow]" + algo.Note())
}

func runCompare(p *prompt.Prompter) {
	cmpMode, err := p.Select("Choose comparison mode", []string{
		"Compare Text", "Compare Files",
	})
	if err != nil {
		quit(err)
	}
	file := cmpMode == 1

	firstLabel, secondLabel := "Enter first text", "Enter second text"
	if file {
		firstLabel, secondLabel = "Enter first file path", "Enter second file path"
	}

	srcA, err := readSource(p, file, firstLabel)
	if err != nil {
		quit(err)
	}
	srcB, err := readSource(p, file, secondLabel)
	if err != nil {
		quit(err)
	}

	algo, err := chooseAlgorithm(p)
	if err != nil {
		quit(err)
	}

	res, err := compare.Compare(srcA, srcB, algo)
	if err != nil {
		colorstring.Printf("[red]%v\n", err)
		return
	}

	fmt.Println("\nComparison Results:")
	fmt.Printf("Algorithm: %s\n", algo)
	fmt.Printf("Type: %s\n\n", srcA.Describe())
	fmt.Printf("Input 1: '%s'\n", srcA.Display())
	fmt.Printf("Hash 1:  %s\n\n", res.DigestA)
	fmt.Printf("Input 2: '%s'\n", srcB.Display())
	fmt.Printf("Hash 2:  %s\n\n", res.DigestB)

	if res.Equal {
		colorstring.Println("[green]Hashes match.")
		return
	}
	fmt.Printf("Character differences: %d/%d (%.1f%%)\n",
		res.DiffChars, algo.HexLen(), res.DiffPercent)
}
