package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/susc/internal/config"
	"git.lost.host/meutraa/susc/internal/history"
	"git.lost.host/meutraa/susc/internal/sus"
	"git.lost.host/meutraa/susc/internal/usc"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func chartFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if nil != err {
		return nil, err
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	var files []string
	if err := filepath.Walk(input, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if path.Ext(info.Name()) == ".usc" {
			files = append(files, p)
		}
		return nil
	}); nil != err {
		return nil, fmt.Errorf("unable to walk chart directory: %w", err)
	}
	return files, nil
}

func outputPath(input string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".sus"
	if *config.Output != "" {
		return filepath.Join(*config.Output, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var psr usc.Parser = &usc.DefaultParser{}
	var store history.Store = &history.DefaultStore{}

	if err := store.Init(*config.History); nil != err {
		return fmt.Errorf("unable to open history database: %w", err)
	}
	defer store.Deinit()

	files, err := chartFiles(*config.Input)
	if nil != err {
		return err
	}
	if len(files) == 0 {
		return errors.New("unable to find a .usc file in given directory")
	}

	opts := sus.Options{
		Comment:          *config.Comment,
		Space:            *config.Space,
		StrictCollisions: *config.Strict,
	}

	for _, file := range files {
		data, err := ioutil.ReadFile(file)
		if nil != err {
			return err
		}

		sum := history.Sum(data, opts, *config.Title, *config.Artist, *config.Designer)
		if !*config.Force {
			seen, err := store.Seen(sum)
			if nil != err {
				log.Println("unable to read conversion history", err)
			} else if seen {
				log.Printf("Skipping %v, already converted\n", file)
				continue
			}
		}

		score, err := psr.Parse(file)
		if nil != err {
			return fmt.Errorf("unable to parse %v: %w", file, err)
		}
		score.Metadata.Title = *config.Title
		score.Metadata.Artist = *config.Artist
		score.Metadata.Designer = *config.Designer

		text, err := sus.Dumps(score, opts)
		if nil != err {
			return fmt.Errorf("unable to convert %v: %w", file, err)
		}

		out := outputPath(file)
		if err := ioutil.WriteFile(out, []byte(text), 0644); nil != err {
			return err
		}
		if err := store.Record(sum, out); nil != err {
			log.Println("unable to record conversion", err)
		}
		log.Printf("Wrote %v\n", out)
	}

	return nil
}
