package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"hashcrack/internal/core/domain"
)

// jsonResponse is the envelope for --json output.
type jsonResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(out io.Writer, data interface{}, err error) error {
	resp := jsonResponse{Success: err == nil, Data: data}
	if err != nil {
		resp.Error = err.Error()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func printHeader(out io.Writer, cfg domain.AttackConfig, total int64, known bool) {
	fmt.Fprintf(out, "%s Target: %s\n", colorInfo("[*]"), cfg.TargetDigest)
	fmt.Fprintf(out, "%s Algorithm: %s\n", colorInfo("[*]"), cfg.Algorithm)
	switch cfg.Mode {
	case domain.ModeDictionary:
		fmt.Fprintf(out, "%s Dictionary attack: %s\n", colorInfo("[*]"), cfg.WordlistPath)
	case domain.ModeBruteForce:
		fmt.Fprintf(out, "%s Brute force attack: length %d-%d, %d characters\n",
			colorInfo("[*]"), cfg.MinLength, cfg.MaxLength, len([]rune(cfg.Charset)))
	case domain.ModeMask:
		fmt.Fprintf(out, "%s Mask attack: %s\n", colorInfo("[*]"), cfg.Mask)
	}
	if known {
		fmt.Fprintf(out, "%s Candidates: %s\n", colorInfo("[*]"), formatCount(total))
	} else {
		fmt.Fprintf(out, "%s Candidates: unknown\n", colorInfo("[*]"))
	}
}

func printOutcome(out io.Writer, outcome domain.AttackOutcome) {
	switch outcome.Status {
	case domain.OutcomeFound:
		fmt.Fprintf(out, "%s Password found: %s\n", colorSuccess("[+]"), outcome.Candidate)
	case domain.OutcomeCancelled:
		fmt.Fprintf(out, "%s Attack interrupted\n", colorWarn("[!]"))
	case domain.OutcomeFailed:
		fmt.Fprintf(out, "%s Attack aborted by a wordlist read error\n", colorError("[-]"))
	default:
		fmt.Fprintf(out, "%s Password not found\n", colorError("[-]"))
	}
	fmt.Fprintf(out, "%s Attempts: %s\n", colorInfo("[*]"), formatCount(outcome.Attempts))
	fmt.Fprintf(out, "%s Time: %s\n", colorInfo("[*]"), outcome.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "%s Rate: %.2f h/s\n", colorInfo("[*]"), outcome.Rate())
}
