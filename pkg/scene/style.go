package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"menubox/pkg/css"
)

// applyStyleElement handles <link> and <style>. A JSON style adds inherited
// properties to ctx; CSS adds rules for every element built afterwards.
func (b *builder) applyStyleElement(el *etree.Element, ctx *css.Context) (*css.Context, error) {
	if el.Tag == "style" {
		return ctx, b.addStylesheet(el.Text(), "inline")
	}

	if path := el.SelectAttrValue("style", ""); path != "" {
		f, err := os.Open(b.resolvePath(path))
		if err != nil {
			return nil, fmt.Errorf("open style: %w", err)
		}
		defer f.Close()

		props, err := css.LoadJSONStyle(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		b.logger.Debug("Loaded JSON style", zap.String("path", path), zap.Int("properties", len(props)))
		ctx = ctx.WithProperties(props)
	}

	if path := el.SelectAttrValue("css", ""); path != "" {
		data, err := os.ReadFile(b.resolvePath(path))
		if err != nil {
			return nil, fmt.Errorf("read stylesheet: %w", err)
		}
		if err := b.addStylesheet(string(data), path); err != nil {
			return nil, err
		}
	}
	return ctx, nil
}

func (b *builder) addStylesheet(text, source string) error {
	sheet, err := css.ParseStylesheet(text)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	b.sheet.Merge(sheet)
	b.logger.Debug("Loaded stylesheet", zap.String("source", source), zap.Int("rules", len(sheet.Rules)))
	return nil
}

func (b *builder) resolvePath(path string) string {
	if filepath.IsAbs(path) || b.opts.BaseDir == "" {
		return path
	}
	return filepath.Join(b.opts.BaseDir, path)
}
