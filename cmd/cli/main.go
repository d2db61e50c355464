package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"hybrid-command-router/config"
	"hybrid-command-router/internal/command"
	"hybrid-command-router/internal/command/usecase"
	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/intent"
	"hybrid-command-router/internal/merge"
	"hybrid-command-router/internal/model"
	"hybrid-command-router/internal/offline"
	"hybrid-command-router/internal/stats"
	"hybrid-command-router/pkg/datemath"
	"hybrid-command-router/pkg/kvstore"
	"hybrid-command-router/pkg/log"
	"hybrid-command-router/pkg/remote"
	"hybrid-command-router/pkg/speech"
)

var rootCmd = &cobra.Command{
	Use:   "hcr",
	Short: "hcr - hybrid command router CLI",
}

var processCmd = &cobra.Command{
	Use:   "process [text]",
	Short: "Process a single command and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProcess,
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive command loop",
	RunE:  runREPL,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show processing statistics",
	RunE:  runStats,
}

var (
	offlineFlag bool
	verboseFlag bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&offlineFlag, "offline", false, "Treat the network as unavailable")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print routing details")
	rootCmd.AddCommand(processCmd, replCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildUseCase wires the same stack as cmd/api, with the CLI quiet by
// default and an optional forced-offline device.
func buildUseCase() (command.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.NewNop()
	if verboseFlag {
		logger = log.Init(log.ZapConfig{
			Level:        "debug",
			Mode:         "development",
			Encoding:     "console",
			ColorEnabled: true,
		})
	}

	deviceReader := device.NewStaticReader(device.StaticReader{
		Battery:       cfg.Device.BatteryLevel,
		LowPower:      cfg.Device.LowPowerMode,
		NetworkDown:   cfg.Device.NetworkDown || offlineFlag,
		LocaleTag:     cfg.Device.Locale,
		Brightness:    cfg.Device.Brightness,
		Volume:        cfg.Device.Volume,
		Model:         cfg.Device.ModelName,
		StorageFreeGB: cfg.Device.StorageFreeGB,
	})

	timezone := cfg.Engine.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		dates, _ = datemath.NewParser("UTC")
	}

	registry, err := offline.NewRegistry(offline.Deps{
		Device: deviceReader,
		Dates:  dates,
	})
	if err != nil {
		return nil, fmt.Errorf("build offline registry: %w", err)
	}

	store, err := kvstore.NewFileStore(cfg.Stats.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open statistics store: %w", err)
	}
	tracker := stats.NewTracker(store)
	_ = tracker.Load(context.Background())

	processors, err := remote.InitializeProcessors(&cfg.Remote)
	if err != nil {
		return nil, fmt.Errorf("initialize remote processors: %w", err)
	}
	remoteMgr := remote.NewManager(processors, remote.ManagerConfigFrom(&cfg.Remote), logger)

	uc := usecase.New(
		logger,
		intent.NewClassifier(),
		registry,
		merge.NewMerger(),
		tracker,
		deviceReader,
		remoteMgr,
		speech.NewHTTPTranscriber(cfg.Speech.BaseURL, cfg.Speech.APIKey),
		cfg.Engine,
	)
	return uc, nil
}

func runProcess(cmd *cobra.Command, args []string) error {
	uc, err := buildUseCase()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	sc := model.Scope{UserID: "cli", SessionID: uuid.NewString()}

	out, err := uc.ProcessText(cmd.Context(), sc, command.ProcessInput{Text: text})
	if err != nil {
		fmt.Println(command.Apology(err))
		return err
	}

	printAnswer(out)
	return nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	uc, err := buildUseCase()
	if err != nil {
		return err
	}

	sc := model.Scope{UserID: "cli", SessionID: uuid.NewString()}

	fmt.Println("hcr repl (type 'exit' to quit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		out, err := uc.ProcessText(cmd.Context(), sc, command.ProcessInput{Text: input})
		if err != nil {
			fmt.Println(command.Apology(err))
			continue
		}
		printAnswer(out)
	}
	return scanner.Err()
}

func runStats(cmd *cobra.Command, args []string) error {
	uc, err := buildUseCase()
	if err != nil {
		return err
	}

	snapshot := uc.Statistics(cmd.Context())
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printAnswer(out command.ProcessOutput) {
	fmt.Println(out.ResponseText)
	if verboseFlag {
		fmt.Printf("[intent=%s method=%s confidence=%.2f elapsed=%s]\n", out.Intent, out.Method, out.Confidence, out.Elapsed)
		fmt.Printf("[routing: %s]\n", out.RoutingExplanation)
		if out.MergeStrategy != "" {
			fmt.Printf("[merge: %s]\n", out.MergeStrategy)
		}
	}
}
