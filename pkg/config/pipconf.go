package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// pipIndexURL extracts index-url from pip's own configuration so that a
// machine already pointed at a private index works without extra setup.
// The first readable file wins; only the [global] section is consulted.
func pipIndexURL() string {
	for _, path := range pipConfigPaths() {
		if url := scanPipConf(path); url != "" {
			return url
		}
	}
	return ""
}

func pipConfigPaths() []string {
	var paths []string
	if p := os.Getenv("PIP_CONFIG_FILE"); p != "" {
		paths = append(paths, p)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".pip", "pip.conf"),
			filepath.Join(home, ".config", "pip", "pip.conf"),
		)
	}
	return append(paths, "/etc/pip.conf")
}

// scanPipConf reads the index-url value from pip's INI format. pip.conf
// is simple enough that a line scanner suffices: sections in brackets,
// key = value pairs, comments with # or ;.
func scanPipConf(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	section := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			section = strings.TrimSpace(line[1 : len(line)-1])
		case section == "global":
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			if strings.TrimSpace(key) == "index-url" {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}
