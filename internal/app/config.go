package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apperrors "github.com/vburojevic/towezterm/internal/errors"
)

func appDir() (string, error) {
	if v := os.Getenv(envHome); strings.TrimSpace(v) != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

func configFilePath() (string, error) {
	ad, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(ad, "config.yaml"), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyGit, "git")
	v.SetDefault(keyITerm2Repo, defaultITerm2Repo)
	v.SetDefault(keyITerm2Dir, defaultITerm2Dir)
	v.SetDefault(keyKittyRepo, defaultKittyRepo)
	v.SetDefault(keyKittyDir, defaultKittyDir)
	v.SetDefault(keyOutITerm2, defaultOutITerm2)
	v.SetDefault(keyOutKitty, defaultOutKitty)
	v.SetDefault(keyOutAll, defaultOutAll)
	v.SetDefault(keyNoColor, false)
}

func defaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return configFromViper(v)
}

// loadConfig resolves settings with the precedence
// defaults < config file < TOWEZTERM_* environment. Flags are applied on top
// by the commands. The defaults are returned alongside any error.
func loadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	p, err := configFilePath()
	if err != nil {
		return configFromViper(v), nil
	}
	if err := mergeConfigFile(v, p); err != nil {
		return defaultConfig(), apperrors.New(apperrors.CodeConfigurationError, fmt.Sprintf("load config: %v", err), err)
	}
	return configFromViper(v), nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func configFromViper(v *viper.Viper) Config {
	return Config{
		Git: strings.TrimSpace(v.GetString(keyGit)),
		ITerm2: SourceConfig{
			Repo: v.GetString(keyITerm2Repo),
			Dir:  v.GetString(keyITerm2Dir),
		},
		Kitty: SourceConfig{
			Repo: v.GetString(keyKittyRepo),
			Dir:  v.GetString(keyKittyDir),
		},
		NoColor:   v.GetBool(keyNoColor),
		OutITerm2: v.GetString(keyOutITerm2),
		OutKitty:  v.GetString(keyOutKitty),
		OutAll:    v.GetString(keyOutAll),
	}
}

// writeDefaultConfig writes the default settings as YAML. It refuses to
// overwrite an existing file and reports whether it wrote one.
func writeDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.WriteConfigAs(path); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

func printConfig(w io.Writer, path string, cfg Config) {
	fmt.Fprintf(w, "Config file: %s\n", path)
	fmt.Fprintf(w, "  %s: %s\n", keyGit, cfg.Git)
	fmt.Fprintf(w, "  %s: %s\n", keyITerm2Repo, cfg.ITerm2.Repo)
	fmt.Fprintf(w, "  %s: %s\n", keyITerm2Dir, cfg.ITerm2.Dir)
	fmt.Fprintf(w, "  %s: %s\n", keyKittyRepo, cfg.Kitty.Repo)
	fmt.Fprintf(w, "  %s: %s\n", keyKittyDir, cfg.Kitty.Dir)
	fmt.Fprintf(w, "  %s: %s\n", keyOutITerm2, cfg.OutITerm2)
	fmt.Fprintf(w, "  %s: %s\n", keyOutKitty, cfg.OutKitty)
	fmt.Fprintf(w, "  %s: %s\n", keyOutAll, cfg.OutAll)
	fmt.Fprintf(w, "  %s: %v\n", keyNoColor, cfg.NoColor)
}

func newConfigCmd() *cobra.Command {
	var (
		show bool
		init bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize towezterm config",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := configFilePath()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if init {
				wrote, err := writeDefaultConfig(p)
				if err != nil {
					return apperrors.New(apperrors.CodeConfigurationError, err.Error(), err)
				}
				if wrote {
					fmt.Fprintf(out, "Wrote %s\n", p)
				} else {
					fmt.Fprintf(out, "Config already exists: %s\n", p)
				}
				if !show {
					return nil
				}
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			printConfig(out, p, cfg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "Show effective config (the default without --init; with --init, show after writing)")
	cmd.Flags().BoolVar(&init, "init", false, "Write a default config file if missing")
	return cmd
}
