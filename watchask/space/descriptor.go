package space

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// fence delimits the descriptor block at the top of a space README.
const fence = "---"

// Descriptor is the metadata block a hosting platform reads to configure a
// space's display card and runtime.
type Descriptor struct {
	Title            string `yaml:"title"`
	Emoji            string `yaml:"emoji"`
	ColorFrom        string `yaml:"colorFrom"`
	ColorTo          string `yaml:"colorTo"`
	SDK              string `yaml:"sdk"`
	SDKVersion       string `yaml:"sdk_version"`
	AppFile          string `yaml:"app_file"`
	Pinned           bool   `yaml:"pinned"`
	ShortDescription string `yaml:"short_description"`

	// UnknownKeys preserves any keys in the block that are not recognized
	// descriptor fields (reported by Validate as warnings).
	UnknownKeys []string `yaml:"-"`
}

var knownKeys = map[string]struct{}{
	"title":             {},
	"emoji":             {},
	"colorFrom":         {},
	"colorTo":           {},
	"sdk":               {},
	"sdk_version":       {},
	"app_file":          {},
	"pinned":            {},
	"short_description": {},
}

// knownSDKs are the runtime frameworks a host can provision for the entry file.
var knownSDKs = []string{"gradio", "streamlit", "docker", "static"}

// knownColors are the gradient stops the hosting platform accepts.
var knownColors = []string{"red", "yellow", "green", "blue", "indigo", "purple", "pink", "gray"}

// Parse reads the fenced YAML front matter from the given README content
// and returns the descriptor it declares.
func Parse(reader io.Reader) (*Descriptor, error) {
	block, err := frontMatter(reader)
	if err != nil {
		return nil, err
	}

	var d Descriptor
	if err := yaml.Unmarshal([]byte(block), &d); err != nil {
		return nil, fmt.Errorf("unable to parse descriptor block: %w", err)
	}

	// a second, order-preserving pass to surface unrecognized keys
	var raw yaml.MapSlice
	if err := yaml.Unmarshal([]byte(block), &raw); err == nil {
		for _, item := range raw {
			key, ok := item.Key.(string)
			if !ok {
				continue
			}
			if _, known := knownKeys[key]; !known {
				d.UnknownKeys = append(d.UnknownKeys, key)
			}
		}
	}

	return &d, nil
}

func frontMatter(reader io.Reader) (string, error) {
	scanner := bufio.NewScanner(reader)

	if !scanner.Scan() {
		return "", fmt.Errorf("empty document")
	}
	if strings.TrimSpace(scanner.Text()) != fence {
		return "", fmt.Errorf("document does not start with a %q fence", fence)
	}

	var lines []string
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == fence {
			return strings.Join(lines, "\n"), scanner.Err()
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("descriptor block is missing its closing %q fence", fence)
}

// Validate checks the descriptor for host-rejected values. Hard failures are
// returned as errors; cosmetic issues (unknown keys, unrecognized colors) come
// back as warnings.
func (d Descriptor) Validate() (warnings []string, err error) {
	var problems []string
	if strings.TrimSpace(d.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(d.SDK) == "" {
		problems = append(problems, "sdk is required")
	} else if !contains(knownSDKs, strings.ToLower(d.SDK)) {
		problems = append(problems, fmt.Sprintf("unrecognized sdk %q (expected one of %s)", d.SDK, strings.Join(knownSDKs, ", ")))
	}
	if strings.TrimSpace(d.AppFile) == "" && strings.ToLower(d.SDK) != "static" {
		problems = append(problems, "app_file is required")
	}

	for _, key := range d.UnknownKeys {
		warnings = append(warnings, fmt.Sprintf("unrecognized key %q", key))
	}
	for _, pair := range []struct{ field, value string }{
		{"colorFrom", d.ColorFrom},
		{"colorTo", d.ColorTo},
	} {
		if pair.value != "" && !contains(knownColors, strings.ToLower(pair.value)) {
			warnings = append(warnings, fmt.Sprintf("%s %q is not a recognized color", pair.field, pair.value))
		}
	}
	if len(d.ShortDescription) > 60 {
		warnings = append(warnings, "short_description is longer than 60 characters and may be truncated")
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("invalid descriptor: %s", strings.Join(problems, "; "))
	}
	return warnings, nil
}

// Render writes the descriptor back out as a fenced block in stable key order.
func (d Descriptor) Render(writer io.Writer) error {
	ordered := yaml.MapSlice{
		{Key: "title", Value: d.Title},
		{Key: "emoji", Value: d.Emoji},
		{Key: "colorFrom", Value: d.ColorFrom},
		{Key: "colorTo", Value: d.ColorTo},
		{Key: "sdk", Value: d.SDK},
		{Key: "sdk_version", Value: d.SDKVersion},
		{Key: "app_file", Value: d.AppFile},
		{Key: "pinned", Value: d.Pinned},
		{Key: "short_description", Value: d.ShortDescription},
	}

	// omit empty optional values, keeping the block as tight as the original
	trimmed := yaml.MapSlice{}
	for _, item := range ordered {
		if s, ok := item.Value.(string); ok && s == "" {
			continue
		}
		trimmed = append(trimmed, item)
	}

	contents, err := yaml.Marshal(trimmed)
	if err != nil {
		return fmt.Errorf("unable to render descriptor: %w", err)
	}

	if _, err := fmt.Fprintf(writer, "%s\n%s%s\n", fence, string(contents), fence); err != nil {
		return err
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}
