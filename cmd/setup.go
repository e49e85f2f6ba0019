package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"seoforge/internal/storage"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for Seoforge",
	Long:  `Choose a provider, configure API keys and create the output directories.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

type setupAnswers struct {
	provider  string
	backend   string
	outputDir string
	useGCS    bool
	env       map[string]string
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("Seoforge Setup"))

	answers := &setupAnswers{env: make(map[string]string), outputDir: "./output"}

	steps := []struct {
		name string
		fn   func(*setupAnswers) error
	}{
		{"Choosing provider", chooseProvider},
		{"Configuring keys", configureKeys},
		{"Configuring storage", configureStorage},
		{"Writing files", writeSetupFiles},
	}

	for _, step := range steps {
		if err := step.fn(answers); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	printNextSteps()
	return nil
}

func chooseProvider(a *setupAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("AI provider").
				Options(
					huh.NewOption("Gemini (outline, draft and image)", "gemini"),
					huh.NewOption("OpenAI (outline, draft and image)", "openai"),
					huh.NewOption("Groq (outline and draft only)", "groq"),
				).
				Value(&a.provider),
		),
	).Run()
}

func configureKeys(a *setupAnswers) error {
	switch a.provider {
	case "groq":
		return askKey(a.env, "GROQ_API_KEY", "GROQ API Key", "https://console.groq.com/keys")
	case "openai":
		return askKey(a.env, "OPENAI_API_KEY", "OpenAI API Key", "https://platform.openai.com/api-keys")
	}

	if err := huh.NewSelect[string]().
		Title("Gemini backend").
		Options(
			huh.NewOption("Gemini API (API key)", "gemini"),
			huh.NewOption("Vertex AI (Google Cloud credentials)", "vertex"),
		).
		Value(&a.backend).
		Run(); err != nil {
		return err
	}

	if a.backend == "vertex" {
		return askValue(a.env, "GOOGLE_CLOUD_PROJECT", "Google Cloud project ID")
	}
	return askKey(a.env, "GEMINI_API_KEY", "Gemini API Key", "https://aistudio.google.com/apikey")
}

func configureStorage(a *setupAnswers) error {
	if err := huh.NewConfirm().
		Title("Store artifacts in Google Cloud Storage?").
		Description("Outlines and images are saved locally otherwise").
		Value(&a.useGCS).
		Run(); err != nil {
		return err
	}

	if a.useGCS {
		return askValue(a.env, "GCS_BUCKET", "Bucket name")
	}

	return huh.NewInput().
		Title("Output directory").
		Value(&a.outputDir).
		Run()
}

func askKey(env map[string]string, key, title, description string) error {
	var value string
	if err := huh.NewInput().
		Title(title).
		Description(description).
		EchoMode(huh.EchoModePassword).
		Value(&value).
		Validate(required(title)).
		Run(); err != nil {
		return err
	}
	env[key] = strings.TrimSpace(value)
	return nil
}

func askValue(env map[string]string, key, title string) error {
	var value string
	if err := huh.NewInput().
		Title(title).
		Value(&value).
		Validate(required(title)).
		Run(); err != nil {
		return err
	}
	env[key] = strings.TrimSpace(value)
	return nil
}

func writeSetupFiles(a *setupAnswers) error {
	if !a.useGCS {
		if err := storage.NewLocalStorage(a.outputDir).EnsureDirectories(); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("✓ Created " + a.outputDir))
	}

	if err := confirmOverwrite(".env"); err != nil {
		if errors.Is(err, errKeep) {
			fmt.Println(infoStyle.Render("Kept existing .env"))
		} else {
			return err
		}
	} else if err := writeEnvFile(".env", a.env); err != nil {
		return err
	}

	path := configFile()
	if err := confirmOverwrite(path); err != nil {
		if errors.Is(err, errKeep) {
			fmt.Println(infoStyle.Render("Kept existing " + path))
			return nil
		}
		return err
	}
	return writeConfigFile(path, a)
}

var errKeep = errors.New("keep existing file")

func confirmOverwrite(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	var overwrite bool
	if err := huh.NewConfirm().
		Title(fmt.Sprintf("Found existing %s", path)).
		Description("Overwrite?").
		Value(&overwrite).
		Run(); err != nil {
		return err
	}
	if !overwrite {
		return errKeep
	}
	return nil
}

var envOrder = []string{
	"GEMINI_API_KEY",
	"GROQ_API_KEY",
	"OPENAI_API_KEY",
	"GOOGLE_CLOUD_PROJECT",
	"GCS_BUCKET",
}

func writeEnvFile(path string, env map[string]string) error {
	var b strings.Builder
	for _, key := range envOrder {
		if val, ok := env[key]; ok && val != "" {
			fmt.Fprintf(&b, "%s=%s\n", key, val)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("✓ Created " + path))
	return nil
}

type setupConfig struct {
	Provider string `yaml:"provider"`
	Gemini   struct {
		Backend string `yaml:"backend,omitempty"`
	} `yaml:"gemini,omitempty"`
	Output struct {
		Dir string `yaml:"dir,omitempty"`
	} `yaml:"output,omitempty"`
	GCS struct {
		Enabled bool `yaml:"enabled,omitempty"`
	} `yaml:"gcs,omitempty"`
}

func writeConfigFile(path string, a *setupAnswers) error {
	var cfg setupConfig
	cfg.Provider = a.provider
	cfg.Gemini.Backend = a.backend
	cfg.GCS.Enabled = a.useGCS
	if !a.useGCS {
		cfg.Output.Dir = a.outputDir
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Println(successStyle.Render("✓ Created " + path))
	return nil
}

func printNextSteps() {
	fmt.Println()
	fmt.Println(titleStyle.Render("Next steps:"))
	fmt.Println(`  1. Run: seoforge outline -k "your keywords" -u https://competitor.example/post`)
	fmt.Println("  2. Run: seoforge artifacts --kind outlines")
	fmt.Println(`  3. Run: seoforge draft -o <outline name> -k "your keywords" -f draft.md`)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
