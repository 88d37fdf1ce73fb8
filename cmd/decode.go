package cmd

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mabhi256/jserial/internal/javaserial"
	"github.com/mabhi256/jserial/utils"
	"github.com/spf13/cobra"
)

var (
	decodeJSON           bool
	decodeContainerTypes bool
	decodeDebug          string
	decodeGzip           string
)

var decodeCmd = &cobra.Command{
	Use:               "decode [file|-]",
	Short:             `Decode a Java object-serialization stream into its value graph`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".ser", ".bin"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := readInput(args[0], decodeGzip)
		if err != nil {
			return err
		}

		reg := javaserial.DefaultRegistry()
		if decodeContainerTypes {
			registerContainerTypes(reg)
		}

		dec := javaserial.NewWithRegistry(buf, reg)
		if decodeDebug != "" {
			f, err := os.Create(decodeDebug)
			if err != nil {
				return fmt.Errorf("open debug file: %w", err)
			}
			defer f.Close()
			dec.Debugf = func(format string, a ...any) {
				fmt.Fprintf(f, format+"\n", a...)
			}
		}

		items, err := dec.Decode()
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		if decodeJSON {
			projected := make([]any, len(items))
			for i, v := range items {
				projected[i] = javaserial.ToJSONValue(v)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(projected)
		}

		for i, v := range items {
			fmt.Printf("[%d] %v\n", i, v)
		}
		return nil
	},
}

// readInput reads the named file (or stdin when name is "-"), transparently
// gunzipping per mode: "always" forces gunzip, "never" forces raw, "auto"
// (the default) sniffs the gzip magic number.
func readInput(name, mode string) ([]byte, error) {
	var r io.Reader
	if name == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	gz := mode == "always" || (mode == "auto" && len(raw) >= 2 && raw[0] == 0x1f && raw[1] == 0x8b)
	if !gz {
		return raw, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", name, err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gunzip %s: %w", name, err)
	}
	return out, nil
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "print decoded values as JSON")
	decodeCmd.Flags().BoolVar(&decodeContainerTypes, "container-types", false, "register example ArrayList/HashMap post-processors")
	decodeCmd.Flags().StringVar(&decodeDebug, "debug", "", "write a tag-by-tag trace to this file")
	decodeCmd.Flags().StringVar(&decodeGzip, "gzip", "auto", "gzip handling: auto|always|never")
	rootCmd.AddCommand(decodeCmd)
}
