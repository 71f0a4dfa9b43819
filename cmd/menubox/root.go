package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"menubox/pkg/config"
	"menubox/pkg/observability"
	"menubox/pkg/scene"
	"menubox/pkg/text"
)

// app is the state shared by every subcommand once the root has loaded the
// configuration.
type app struct {
	cfgFile string
	v       *viper.Viper
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "menubox",
		Short:         "Lay out and render menu scenes described in XML.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			observability.InitializeLogger(cfg.Logger)
			a.logger = observability.GetLogger()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./menubox.yaml)")
	flags.Float64("width", 0, "viewport width in pixels")
	flags.Float64("height", 0, "viewport height in pixels")
	flags.Float64("root-size", 0, "root font size (rem) in pixels")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	bindFlag(a.v, "viewport.width", flags.Lookup("width"))
	bindFlag(a.v, "viewport.height", flags.Lookup("height"))
	bindFlag(a.v, "fonts.root_size", flags.Lookup("root-size"))
	bindFlag(a.v, "logger.level", flags.Lookup("log-level"))

	root.AddCommand(
		newRenderCmd(a),
		newShowCmd(a),
		newBoxesCmd(a),
		newEvalCmd(a),
	)
	return root
}

// bindFlag binds a flag to a config key; viper only uses the flag once it
// has been set on the command line.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

// sceneOptions builds loader options from the configuration.
func (a *app) sceneOptions() scene.Options {
	return scene.Options{
		ViewportWidth:  a.cfg.Viewport.Width,
		ViewportHeight: a.cfg.Viewport.Height,
		RootFontSize:   a.cfg.Fonts.RootSize,
		Fonts:          a.fonts(),
		Logger:         a.logger,
	}
}

func (a *app) fonts() text.FontConfig {
	return text.FontConfig{Regular: a.cfg.Fonts.Regular, Bold: a.cfg.Fonts.Bold}
}

func (a *app) loadScene(path string) (*scene.Scene, error) {
	s, err := scene.LoadFile(path, a.sceneOptions())
	if err != nil {
		return nil, err
	}
	a.logger.Info("Scene loaded", zap.String("path", path), zap.Int("elements", len(s.Elements)))
	return s, nil
}
