package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GriffinCanCode/keypoints/internal/domain/keypoints"
	"github.com/GriffinCanCode/keypoints/internal/infrastructure/logging"
	"github.com/GriffinCanCode/keypoints/internal/storage"
)

type ctxKey string

const appKey ctxKey = "app"

// widgetKeys maps CLI config keys (and KEYPOINTS_* env vars) to global setting keys.
var widgetKeys = map[string]string{
	"view":         keypoints.SettingDisplayPosition,
	"mode":         keypoints.SettingDisplayMode,
	"title":        keypoints.SettingWidgetTitle,
	"button_style": keypoints.SettingButtonStyle,
	"button_color": keypoints.SettingButtonColor,
	"list_type":    keypoints.SettingListType,
}

// app holds the dependencies shared by subcommands.
type app struct {
	store   *storage.Store
	service *keypoints.Service
	logger  *logging.Logger
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "keypoints",
		Short:         "Render key points widgets from data files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
			}
			v.SetEnvPrefix("keypoints")
			v.AutomaticEnv()
			if err := v.BindPFlag("data", cmd.Root().PersistentFlags().Lookup("data")); err != nil {
				return err
			}
			if err := v.BindPFlag("log_level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
				return err
			}

			a, err := buildApp(v)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, a))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().String("data", "", "data file pattern, e.g. 'data/**/*.yaml'")
	cmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newAppendCmd())
	cmd.AddCommand(newExpandCmd())
	cmd.AddCommand(newAssetsCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func buildApp(v *viper.Viper) (*app, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = v.GetString("log_level")
	logCfg.OutputPaths = []string{"stderr"}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logCfg.Level, err)
	}

	store := storage.NewStore()
	if pattern := v.GetString("data"); pattern != "" {
		loaded, err := store.LoadGlob(pattern)
		if err != nil {
			return nil, err
		}
		if len(loaded) == 0 {
			return nil, fmt.Errorf("no data files match %q", pattern)
		}
	}
	for key, setting := range widgetKeys {
		if value := strings.TrimSpace(v.GetString(key)); value != "" {
			store.SetGlobalSetting(setting, value)
		}
	}

	service := keypoints.NewService(store, store, store, logger.Named("keypoints"))
	return &app{store: store, service: service, logger: logger}, nil
}

func getApp(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey).(*app)
	if !ok {
		return nil, errors.New("internal error: app not initialized")
	}
	return a, nil
}

// readContent reads a content file, or stdin for "-". Empty path yields "".
func readContent(cmd *cobra.Command, path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return string(data), nil
}
