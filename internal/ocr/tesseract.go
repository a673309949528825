package ocr

import (
	"context"
	"fmt"
	"strconv"

	"github.com/otiai10/gosseract/v2"
)

// recognizer turns one rendered page image into text.
type recognizer interface {
	recognize(ctx context.Context, imgPath string) (string, error)
}

// execTesseract shells out to the tesseract binary.
type execTesseract struct {
	bin      string
	lang     string
	psm      int
	oem      int
	tessdata string
	runner   Runner
}

func (t execTesseract) recognize(ctx context.Context, imgPath string) (string, error) {
	// tesseract <img> stdout -l <lang> --psm N --oem N
	args := []string{imgPath, "stdout", "-l", t.lang}
	if t.psm > 0 {
		args = append(args, "--psm", strconv.Itoa(t.psm))
	}
	if t.oem > 0 {
		args = append(args, "--oem", strconv.Itoa(t.oem))
	}
	if t.tessdata != "" {
		args = append(args, "--tessdata-dir", t.tessdata)
	}
	out, errb, err := t.runner.Run(ctx, t.bin, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w: %s", err, firstLine(errb))
	}
	return string(out), nil
}

// gosseractEngine recognizes in-process through the Tesseract C API. A client
// is not safe for concurrent use, so one is created per page.
type gosseractEngine struct {
	lang     string
	psm      int
	tessdata string
}

func (g gosseractEngine) recognize(ctx context.Context, imgPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client := gosseract.NewClient()
	defer func() { _ = client.Close() }()

	if g.tessdata != "" {
		if err := client.SetTessdataPrefix(g.tessdata); err != nil {
			return "", fmt.Errorf("gosseract tessdata: %w", err)
		}
	}
	if err := client.SetLanguage(g.lang); err != nil {
		return "", fmt.Errorf("gosseract language: %w", err)
	}
	if g.psm > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(g.psm)); err != nil {
			return "", fmt.Errorf("gosseract psm: %w", err)
		}
	}
	if err := client.SetImage(imgPath); err != nil {
		return "", fmt.Errorf("gosseract image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("gosseract recognize: %w", err)
	}
	return text, nil
}
