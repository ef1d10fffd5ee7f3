package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/gogpu/avatar"
	"github.com/gogpu/avatar/internal/batch"
	"github.com/gogpu/avatar/raster"
)

// jpegQuality is used for .jpg and .jpeg outputs.
const jpegQuality = 92

func newRenderCommand(configFile *string) *cobra.Command {
	var id, out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one avatar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := prepare(cmd, *configFile)
			if err != nil {
				return err
			}
			if out == "" {
				out = sanitizeID(id) + ".png"
			}
			c, err := avatar.GenerateContext(cmd.Context(), conf.Theme, id, conf.Size, conf.Options()...)
			if err != nil {
				return err
			}
			if err := writeImage(out, c, conf.Scale); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	defineRenderFlags(cmd)
	cmd.Flags().StringVar(&id, "id", "", "identifier to render (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, .png or .jpg (default <id>.png)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newBatchCommand(configFile *string) *cobra.Command {
	var outDir, idsFile string

	cmd := &cobra.Command{
		Use:   "batch [ids...]",
		Short: "Render many avatars concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := prepare(cmd, *configFile)
			if err != nil {
				return err
			}
			ids := args
			if idsFile != "" {
				fromFile, err := readIDs(idsFile)
				if err != nil {
					return err
				}
				ids = append(ids, fromFile...)
			}
			if len(ids) == 0 {
				return errors.New("no identifiers given")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			files, err := renderBatch(cmd.Context(), conf, outDir, ids)
			for _, f := range files {
				if f != "" {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
			}
			return err
		},
	}
	defineRenderFlags(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&idsFile, "ids-file", "", "file with one identifier per line")
	cmd.Flags().IntP("workers", "w", 0, "number of workers (default GOMAXPROCS)")
	return cmd
}

func newThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range avatar.Themes() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

// renderBatch renders ids into dir and returns the written file names,
// indexed like ids. Names of avatars that were not written are empty.
func renderBatch(ctx context.Context, conf Config, dir string, ids []string) ([]string, error) {
	pool := batch.NewPool(conf.Workers)
	defer pool.Close()

	opts := conf.Options()
	files := make([]string, len(ids))
	jobs := make([]batch.Job, len(ids))
	for i, id := range ids {
		jobs[i] = func() error {
			c, err := avatar.Generate(conf.Theme, id, conf.Size, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			path := filepath.Join(dir, batchFileName(i, id))
			if err := writeImage(path, c, conf.Scale); err != nil {
				return err
			}
			files[i] = path
			return nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := pool.Run(ctx, jobs)
	return files, err
}

func batchFileName(i int, id string) string {
	return fmt.Sprintf("avatar-%d-%s.png", i+1, sanitizeID(id))
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sanitizeID replaces every character outside [a-zA-Z0-9] with a dash.
func sanitizeID(id string) string {
	return unsafeChars.ReplaceAllString(id, "-")
}

// readIDs reads identifiers one per line, skipping blank lines and lines
// starting with #.
func readIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var ids []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ids, nil
}

// writeImage encodes c, upscaled by scale, into path. The format follows
// the file extension.
func writeImage(path string, c *raster.Canvas, scale int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, c, scale, strings.ToLower(filepath.Ext(path)))
}

func encode(w io.Writer, c *raster.Canvas, scale int, ext string) error {
	dc := c.Context()
	if scale > 1 {
		dc = gg.NewContextForImage(upscale(c.Image(), scale))
	}
	switch ext {
	case ".jpg", ".jpeg":
		return dc.EncodeJPEG(w, jpegQuality)
	default:
		return dc.EncodePNG(w)
	}
}

// upscale enlarges src by an integer factor with nearest-neighbour sampling.
func upscale(src image.Image, scale int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
