// Package report drives a BMI session and renders its result.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/origadmin/oxbmi/internal/bmi"
	"github.com/origadmin/oxbmi/internal/config"
	"github.com/origadmin/oxbmi/internal/prompt"
)

// Console prompts.
const (
	HeightPrompt = "Your height (centimeters): "
	WeightPrompt = "Your weight (kilograms): "
)

// Footer attributes the formula used for the BMI line.
const Footer = "(*) BMI (Oxford 2013) = 1,3 x weight / height ^ 2,5\n" +
	"https://people.maths.ox.ac.uk/trefethen/bmi.html\n"

// Presenter runs one session: clear, prompt, compute, print.
type Presenter struct {
	cfg    *config.Config
	reader *prompt.Reader
	term   io.Writer
	out    io.Writer
}

// NewPresenter creates a Presenter. Prompts, error messages and the screen
// clear go to term; the report goes to out. Both may be the same writer.
func NewPresenter(cfg *config.Config, in io.Reader, term, out io.Writer) *Presenter {
	return &Presenter{
		cfg:    cfg,
		reader: prompt.NewReader(in, term),
		term:   term,
		out:    out,
	}
}

// Run executes the session. Preset height or weight in the config skip the
// matching prompt.
func (p *Presenter) Run() error {
	if p.cfg.ClearScreen && p.cfg.Interactive() {
		if err := ClearScreen(p.term); err != nil {
			return err
		}
	}

	height, err := p.value(p.cfg.Height, HeightPrompt)
	if err != nil {
		return fmt.Errorf("reading height: %w", err)
	}
	weight, err := p.value(p.cfg.Weight, WeightPrompt)
	if err != nil {
		return fmt.Errorf("reading weight: %w", err)
	}
	slog.Debug("Computing assessment", "height", height, "weight", weight)

	a, err := bmi.Assess(height, weight)
	if err != nil {
		return fmt.Errorf("computing BMI: %w", err)
	}
	return Render(p.out, p.cfg.Format, a)
}

func (p *Presenter) value(preset uint16, label string) (uint16, error) {
	if preset != 0 {
		return preset, nil
	}
	return p.reader.ReadUint16(label)
}

// Render writes a in the given format.
func Render(w io.Writer, format string, a *bmi.Assessment) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatText, "":
		return WriteText(w, a)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// WriteText writes the console report.
func WriteText(w io.Writer, a *bmi.Assessment) error {
	_, err := fmt.Fprintf(w, "\nYour Body Mass Index (BMI) is %.2f(*)\n"+
		"You have %s\n"+
		"Your ideal weight is between %.2f and %.2f kg.\n"+
		"\n%s",
		a.BMI, a.Category, a.Ideal.Min, a.Ideal.Max, Footer)
	return err
}
