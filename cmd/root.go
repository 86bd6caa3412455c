package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"mkxorg/internal/logger"
	"mkxorg/internal/xorg"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	cfgFile    string
	force      bool
	outputPath string
	verbose    bool
	jsonOutput bool
)

// fsys is the filesystem all commands operate on. Tests swap in a MemMapFs.
var fsys afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "mkxorg [options-string]",
	Short: "Generate an xorg.conf from a compact option string",
	Long: `mkxorg generates an X server configuration file from a single
comma-delimited option string selecting driver, resolution, color depth
and sync ranges.

The option string accepts, in any order:
  <driver>        use this driver (validated against installed modules)
  <W>x<H>         primary resolution, e.g. 1600x900
  res=<W>x<H>     same as a bare resolution token
  depth=<n>, d=<n>  color depth
  h=<range>       HorizSync range, e.g. h=28-70
  v=<range>       VertRefresh range, e.g. v=50-75
  composite, c    enable the Composite extension
  auto            take the resolution from the framebuffer if trustworthy
  safe, default   safe defaults (driver and resolution)
  vbox            VirtualBox preset (vesa, 28-70, 1280x1024)
  uxa, sna        Intel acceleration method (forces the intel driver)

Examples:
  mkxorg fbdev,1600x900,composite
  mkxorg -o /etc/X11/xorg.conf vbox
  mkxorg --force nvidia,1920x1080,depth=24`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		rep := xorg.NewReporter(os.Stderr, true)
		rep.Errorf("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolVarP(&force, "force", "f", false,
		"skip the installed-driver check")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the configuration to this file instead of stdout")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.mkxorg.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false,
		"output in JSON format")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mkxorg")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MKXORG")

	// Set defaults
	viper.SetDefault("default_driver", "vesa")
	viper.SetDefault("driver_dir", "/usr/lib/xorg/modules/drivers")
	viper.SetDefault("driver_suffix", "_drv.so")
	viper.SetDefault("fb_name_path", "/sys/class/graphics/fb0/name")
	viper.SetDefault("fb_size_path", "/sys/class/graphics/fb0/virtual_size")
	viper.SetDefault("fb_generic_name", "VESA VGA")
	viper.SetDefault("fallback_resolution", "1024x768")
	viper.SetDefault("min_trusted_width", 1024)

	if err := viper.ReadInConfig(); err == nil && verbose {
		log, _ := logger.New(true)
		if log != nil {
			log.Debug("using config file", zap.String("path", viper.ConfigFileUsed()))
		}
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	log, err := logger.New(viper.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := ""
	if len(args) == 1 {
		opts = args[0]
	}

	rep := xorg.NewReporter(cmd.ErrOrStderr(), true)

	content, err := generate(fsys, opts, force, rep, log,
		strings.Join(os.Args, " "), time.Now())
	if err != nil {
		return err
	}

	if outputPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	if err := xorg.WriteConfig(fsys, outputPath, content); err != nil {
		return err
	}
	log.Info("configuration written", zap.String("path", outputPath))
	return nil
}

// generate runs the full pipeline: parse the option string, validate the
// driver against the inventory, resolve sentinel resolutions against the
// framebuffer, and render the document.
func generate(fs afero.Fs, opts string, force bool, rep *xorg.Reporter,
	log *zap.Logger, cmdline string, now time.Time) (string, error) {

	defaultDriver := viper.GetString("default_driver")

	settings := xorg.Parse(opts, xorg.Defaults{Driver: defaultDriver})
	settings.Force = force
	log.Debug("parsed options",
		zap.String("driver", settings.Driver),
		zap.String("resolution", settings.Resolution))

	inv := xorg.Inventory{
		Fs:     fs,
		Dir:    viper.GetString("driver_dir"),
		Suffix: viper.GetString("driver_suffix"),
	}
	inv.Validate(&settings, defaultDriver, rep)

	if settings.Driver == "" {
		settings.Driver = defaultDriver
	}

	if xorg.IsSentinel(settings.Resolution) {
		probe := xorg.Probe{
			Fs:       fs,
			NamePath: viper.GetString("fb_name_path"),
			SizePath: viper.GetString("fb_size_path"),
			Generic:  viper.GetString("fb_generic_name"),
			KnownBad: []string{"1024x768", "1280x1024"},
			MinWidth: viper.GetInt("min_trusted_width"),
		}
		settings.Resolution = probe.GoodResolution(settings.Resolution)
		if xorg.IsSentinel(settings.Resolution) {
			settings.Resolution = viper.GetString("fallback_resolution")
		}
		log.Debug("resolved resolution from framebuffer",
			zap.String("resolution", settings.Resolution))
	}

	meta := xorg.Meta{
		Program:     "mkxorg",
		Version:     version,
		GeneratedAt: now,
		CommandLine: cmdline,
	}
	return xorg.Render(settings, meta), nil
}
