package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"hashcrack/internal/config"
	"hashcrack/internal/core/domain"
)

// attackFlags are the mode and algorithm flags shared by crack and batch.
type attackFlags struct {
	wordlist      string
	bruteForce    bool
	mask          string
	algorithm     string
	charset       string
	customCharset string
	minLength     int
	maxLength     int
	reportFile    string
}

func (f *attackFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.wordlist, "wordlist", "w", "", "wordlist file for a dictionary attack")
	flags.BoolVarP(&f.bruteForce, "brute-force", "b", false, "use a brute force attack")
	flags.StringVarP(&f.mask, "mask", "m", "", `mask for a mask attack (e.g. "?l?l?l?d?d")`)
	flags.StringVar(&f.algorithm, "algorithm", string(domain.DefaultAlgorithm), "hash algorithm (see 'hashcrack algorithms')")
	flags.StringVar(&f.charset, "charset", domain.DefaultCharset, "brute force charset: lower, upper, digits, special, alphanumeric, all")
	flags.StringVar(&f.customCharset, "custom-charset", "", "custom brute force charset, overrides --charset")
	flags.IntVar(&f.minLength, "min-length", domain.DefaultMinLength, "minimum brute force length")
	flags.IntVar(&f.maxLength, "max-length", domain.DefaultMaxLength, "maximum brute force length")
	flags.StringVar(&f.reportFile, "report-file", "", "append a JSON line per run to this file")
}

// applyConfigDefaults copies config values into flags the user did not set.
func (f *attackFlags) applyConfigDefaults(flags *pflag.FlagSet, cfg *config.Config) {
	applyStringDefault(flags, "algorithm", cfg.Algorithm, &f.algorithm)
	applyStringDefault(flags, "charset", cfg.Charset, &f.charset)
	applyIntDefault(flags, "min-length", cfg.MinLength, &f.minLength)
	applyIntDefault(flags, "max-length", cfg.MaxLength, &f.maxLength)
}

func (f *attackFlags) mode() (domain.AttackMode, error) {
	var modes []domain.AttackMode
	if f.wordlist != "" {
		modes = append(modes, domain.ModeDictionary)
	}
	if f.bruteForce {
		modes = append(modes, domain.ModeBruteForce)
	}
	if f.mask != "" {
		modes = append(modes, domain.ModeMask)
	}

	switch len(modes) {
	case 0:
		return "", fmt.Errorf("%w: use --wordlist, --brute-force or --mask", domain.ErrNoAttackMode)
	case 1:
		return modes[0], nil
	}
	return "", fmt.Errorf("%w: %v", domain.ErrMultipleAttackModes, modes)
}

// build turns the flags into an AttackConfig for one target digest.
func (f *attackFlags) build(target string) (domain.AttackConfig, error) {
	mode, err := f.mode()
	if err != nil {
		return domain.AttackConfig{}, err
	}

	cfg := domain.AttackConfig{
		TargetDigest: target,
		Algorithm:    domain.HashAlgorithm(f.algorithm),
		Mode:         mode,
	}
	switch mode {
	case domain.ModeDictionary:
		cfg.WordlistPath = f.wordlist
	case domain.ModeBruteForce:
		charset, err := domain.Charset(f.charset, f.customCharset)
		if err != nil {
			return domain.AttackConfig{}, err
		}
		cfg.Charset = charset
		cfg.MinLength = f.minLength
		cfg.MaxLength = f.maxLength
	case domain.ModeMask:
		cfg.Mask = f.mask
	}
	return cfg, nil
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, dst *int) {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		return
	}
	*dst = value
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, dst *string) {
	if value == "" {
		return
	}
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		return
	}
	*dst = value
}
