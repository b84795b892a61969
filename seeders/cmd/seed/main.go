package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"storage-equipment/internal/spreadsheet"
	"storage-equipment/pkg/apiclient"
	"storage-equipment/pkg/config"
	applogger "storage-equipment/pkg/logger"
	"storage-equipment/seeders"
)

var (
	v       = viper.New()
	logger  *zap.Logger
	seeder  *seeders.Seeder
	xlsFile string
)

var rootCmd = &cobra.Command{
	Use:           "steq-seed",
	Short:         "Наполнение системы оборудованием и заказами через API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg, err := config.FromViper(v)
		if err != nil {
			return err
		}
		logger = applogger.NewLogger(cfg.Log.Level, cfg.Log.File).Named("seed")
		client := apiclient.New(apiclient.Config{BaseURL: cfg.Console.APIBaseURL}, logger)
		seeder = seeders.New(client, client, seeders.Options{Workers: v.GetInt("workers")}, logger)
		logger.Info("📦 Используется API", zap.String("url", client.BaseURL()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var equipmentCmd = &cobra.Command{
	Use:   "equipment",
	Short: "Загрузить оборудование (встроенный набор или лист --file)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := seeders.SampleEquipmentRows()
		if xlsFile != "" {
			f, err := os.Open(xlsFile)
			if err != nil {
				return fmt.Errorf("не удалось открыть файл: %w", err)
			}
			defer f.Close()
			if rows, err = spreadsheet.ReadEquipment(f); err != nil {
				return err
			}
		}
		report, err := seeder.SeedEquipment(cmd.Context(), rows)
		printReport(report)
		return err
	},
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Загрузить встроенный набор заказов",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := seeder.SeedOrders(cmd.Context(), seeders.SampleOrderRows())
		printReport(report)
		return err
	},
}

func printReport(report seeders.Report) {
	fmt.Println()
	fmt.Printf("✅ Создано: %d\n", report.Created)
	for _, r := range report.Rejected {
		fmt.Printf("⚠️  Строка %d (%s) отклонена:\n", r.Line, r.Label)
		for field, msg := range r.Problems {
			fmt.Printf("     %s: %s\n", field, msg)
		}
	}
	for _, r := range report.Failed {
		fmt.Printf("❌ Строка %d (%s): %v\n", r.Line, r.Label, r.Err)
	}
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Базовый URL API (по умолчанию API_BASE_URL)")
	rootCmd.PersistentFlags().Int("workers", seeders.DefaultWorkers, "Число параллельных запросов")
	rootCmd.PersistentFlags().String("log-level", "", "Уровень логов (debug/info/warn/error)")
	_ = v.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))

	equipmentCmd.Flags().StringVar(&xlsFile, "file", "", "Путь к листу .xlsx с оборудованием")

	rootCmd.AddCommand(equipmentCmd, ordersCmd)

	// Пустые флаги не должны затирать значения из окружения.
	cobra.OnInitialize(func() {
		if url, _ := rootCmd.PersistentFlags().GetString("api-url"); url != "" {
			v.Set("api_base_url", url)
		}
		if level, _ := rootCmd.PersistentFlags().GetString("log-level"); level != "" {
			v.Set("log_level", level)
		}
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
