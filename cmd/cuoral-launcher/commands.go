package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/cuoral/internal/bridge"
	"github.com/muurk/cuoral/internal/config"
	"github.com/muurk/cuoral/internal/discovery"
	"github.com/muurk/cuoral/internal/launcher"
	"github.com/muurk/cuoral/internal/logging"
	"github.com/muurk/cuoral/internal/navigation"
	"github.com/muurk/cuoral/internal/surface"
	"github.com/muurk/cuoral/internal/tui"
	"github.com/muurk/cuoral/internal/ui"
	"github.com/muurk/cuoral/internal/urls"
	"github.com/muurk/cuoral/internal/widget"
)

// Command flags
var (
	loadTimeout  time.Duration
	listenAddr   string
	advertise    bool
	instanceName string
	scanTimeout  time.Duration
	forceInit    bool
	tlsCert      string
	tlsKey       string
)

func init() {
	rootCmd.Flags().DurationVar(&loadTimeout, "timeout", surface.DefaultTimeout, "Widget load timeout")

	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(navCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

func runLauncher(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	overlay := launcher.NewOverlay(settings.LauncherOptions(), surface.BrowserOpener{Quiet: true})
	loader := surface.NewLoader(loadTimeout)

	logging.Info("Starting terminal launcher",
		zap.String("position", settings.LauncherOptions().Position.String()),
		zap.Bool("visible", !settings.Launcher.Hidden),
	)

	if err := tui.Run(overlay, loader); err != nil {
		return fmt.Errorf("launcher failed: %w", err)
	}
	return nil
}

// addressCmd prints the widget address for the effective identity
var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the widget address for the configured identity",
	Long: `Build the widget address the launcher would load and print it.

The public key is required; email and names are optional and are sent
empty when not configured.`,
	Example: `  cuoral-launcher address --public-key pk_123
  CUORAL_PUBLIC_KEY=pk_123 cuoral-launcher address --email a@b.co`,
	RunE: runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())

	address, err := widget.BuildAddress(settings.Identity)
	if err != nil {
		printer.PrintError("Cannot build widget address", err,
			"Set a public key with --public-key or CUORAL_PUBLIC_KEY",
			"Or save one with 'cuoral-launcher config init --public-key <key>'",
			"Find your widget's public key at "+urls.Dashboard,
		)
		return err
	}

	printer.PrintSuccess("Widget address",
		ui.Detail{Key: "Public key", Value: settings.Identity.PublicKey},
		ui.Detail{Key: "Address", Value: address.String()},
	)
	return nil
}

// navCmd shows how the navigation gate treats URLs
var navCmd = &cobra.Command{
	Use:     "nav <url>...",
	Short:   "Show whether URLs load inside the modal or open externally",
	Args:    cobra.MinimumNArgs(1),
	Example: `  cuoral-launcher nav https://js.cuoral.com/mobile.html?auto_display=true \
                     https://example.com/help`,
	RunE: runNav,
}

func runNav(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	gate := navigation.NewGate()

	for _, target := range args {
		decision := gate.Decide(target)
		logging.LogNavigation("", target, decision.String())

		detail := ui.Detail{Key: "Decision", Value: decision.String()}
		if decision.AllowsLoad() {
			printer.PrintResult(ui.NewSuccessResult(target, detail))
		} else {
			printer.PrintResult(ui.NewExternalResult(target, detail))
		}
	}
	return nil
}

// serveCmd runs the WebSocket bridge
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the launcher core to remote renderers over WebSocket",
	Long: `Run the launcher bridge.

Each WebSocket connection on /ws gets its own launcher overlay. Renderers
send taps, load events and navigation requests; the bridge answers with
state snapshots and navigation decisions. Prometheus metrics are served on
/metrics.

With --advertise the bridge is announced on the local network over mDNS so
'cuoral-launcher scan' can find it.`,
	Example: `  cuoral-launcher serve
  cuoral-launcher serve --listen 0.0.0.0:8765 --advertise`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default from config, then "+config.DefaultBridgeListen+")")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Advertise the bridge over mDNS")
	serveCmd.Flags().StringVar(&instanceName, "name", "", "mDNS instance name (default derived from hostname)")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "TLS certificate file; serves wss:// when given with --tls-key")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "TLS private key file")
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("listen") {
		settings.Bridge.Listen = listenAddr
	}
	if cmd.Flags().Changed("advertise") {
		settings.Bridge.Advertise = advertise
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bridgeConfig := bridge.Config{Options: settings.LauncherOptions()}
	if (tlsCert == "") != (tlsKey == "") {
		return errors.New("--tls-cert and --tls-key must be given together")
	}
	if tlsCert != "" {
		if bridgeConfig.TLS, err = bridge.NewTLSConfig(tlsCert, tlsKey); err != nil {
			return err
		}
	}
	secure := bridgeConfig.TLS != nil

	ln, err := net.Listen("tcp", settings.BridgeListen())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", settings.BridgeListen(), err)
	}

	server := bridge.New(bridgeConfig, nil)

	local := &discovery.Bridge{
		IP:   ln.Addr().(*net.TCPAddr).IP.String(),
		Port: ln.Addr().(*net.TCPAddr).Port,
		Path: discovery.DefaultPath,
		TLS:  secure,
	}
	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Cuoral Bridge", "serve",
		ui.Detail{Key: "WebSocket", Value: local.WebSocketURL()},
		ui.Detail{Key: "Metrics", Value: local.MetricsURL()},
	)

	if settings.Bridge.Advertise {
		ad, err := discovery.Advertise(instanceName, local.Port, secure)
		if err != nil {
			_ = ln.Close()
			return err
		}
		defer ad.Shutdown()
	}

	if err := server.Serve(ctx, ln); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("bridge failed: %w", err)
	}
	return nil
}

// scanCmd discovers bridges on the network
var scanCmd = &cobra.Command{
	Use:     "scan",
	Short:   "Scan the local network for advertised bridges",
	Example: `  cuoral-launcher scan
  cuoral-launcher scan --timeout 10s`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", discovery.DefaultScanTimeout, "Scan timeout")
}

func runScan(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.Println(fmt.Sprintf("Scanning for Cuoral bridges (timeout: %s)...", scanTimeout))
	printer.Newline()

	bridges, err := discovery.QuickScan(cmd.Context(), scanTimeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(bridges) == 0 {
		printer.PrintError("No bridges found", errors.New("nothing answered on "+discovery.ServiceType),
			"Start a bridge with 'cuoral-launcher serve --advertise'",
			"Check that multicast (UDP 5353) is allowed on this network",
			"Try a longer --timeout",
		)
		return nil
	}

	for _, b := range bridges {
		printer.PrintSuccess(b.Instance,
			ui.Detail{Key: "Host", Value: b.Hostname},
			ui.Detail{Key: "WebSocket", Value: b.WebSocketURL()},
			ui.Detail{Key: "Metrics", Value: b.MetricsURL()},
			ui.Detail{Key: "Version", Value: b.Version},
		)
	}
	return nil
}

// configCmd groups the config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("failed to marshal settings: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:     "init",
	Short:   "Write the effective settings to the config file",
	Example: `  cuoral-launcher config init --public-key pk_123 --email me@example.com`,
	RunE:    runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.GetConfigPath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		if !ui.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), path+" exists. Overwrite?") {
			return nil
		}
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := settings.Save(path); err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration saved",
		ui.Detail{Key: "Path", Value: path},
	)
	return nil
}
