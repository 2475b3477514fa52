package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/kannadacards/internal"
	"codeberg.org/snonux/kannadacards/internal/anki"
	"codeberg.org/snonux/kannadacards/internal/archive"
	"codeberg.org/snonux/kannadacards/internal/batch"
	"codeberg.org/snonux/kannadacards/internal/bot"
	"codeberg.org/snonux/kannadacards/internal/cli"
	"codeberg.org/snonux/kannadacards/internal/export"
	"codeberg.org/snonux/kannadacards/internal/logging"
	"codeberg.org/snonux/kannadacards/internal/models"
	"codeberg.org/snonux/kannadacards/internal/processor"
)

// botMessageTimeout bounds the time spent on one Telegram message
const botMessageTimeout = 2 * time.Minute

func main() {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	botCmd := cli.CreateBotCommand()
	botCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBot(cmd.Context())
	}
	rootCmd.AddCommand(botCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	return logging.New(viper.GetString("log.format"), viper.GetBool("log.debug"))
}

// newProcessor builds the providers and the processor using them. The
// returned providers must be closed by the caller.
func newProcessor(logger *zap.Logger) (*processor.Processor, *processor.Providers, error) {
	opts, err := cli.BuildOptions()
	if err != nil {
		return nil, nil, err
	}

	providers, err := processor.NewProviders(cli.BuildProviderConfig(logger))
	if err != nil {
		return nil, nil, err
	}
	return processor.NewProcessor(providers, opts, logger), providers, nil
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := cmd.Context()
	outputDir := cli.OutputDir()

	if flags.Archive {
		path, err := archive.ArchiveLessons(outputDir)
		if err != nil {
			return fmt.Errorf("failed to archive lessons: %w", err)
		}
		fmt.Printf("Lessons directory archived to: %s\n", path)
		return nil
	}

	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), "")
		return lister.ListAvailableModels(ctx, os.Stdout)
	}

	if flags.BatchFile == "" && len(args) == 0 {
		return cmd.Help()
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	proc, providers, err := newProcessor(logger)
	if err != nil {
		return err
	}
	defer providers.Close()

	var deck *anki.Generator
	if flags.GenerateAnki {
		deck = anki.NewGenerator(&anki.GeneratorOptions{
			OutputPath:     filepath.Join(outputDir, "anki_import.csv"),
			MediaFolder:    filepath.Join(outputDir, "anki_media"),
			IncludeHeaders: true,
		})
	}

	save := func(lesson *processor.Lesson) error {
		fmt.Println(export.FormatLesson(lesson))
		dir, err := export.WriteLesson(outputDir, lesson)
		if err != nil {
			return err
		}
		fmt.Printf("Lesson saved to: %s\n\n", dir)
		if deck != nil {
			deck.AddLesson(filepath.Base(dir), lesson)
		}
		return nil
	}

	if flags.BatchFile != "" {
		summary, err := proc.ProcessBatch(ctx, flags.BatchFile, func(_ batch.Entry, lesson *processor.Lesson) error {
			return save(lesson)
		})
		if summary != nil {
			fmt.Printf("Processed %d of %d sentences, %d failed\n", summary.Processed, summary.Total, summary.Failed)
		}
		if err != nil {
			return err
		}
	} else {
		lesson, err := proc.Process(ctx, args[0])
		if err != nil {
			msg := export.UserMessage(err)
			fmt.Fprintln(os.Stderr, "Error:", msg)
			return errors.New(msg)
		}
		if err := save(lesson); err != nil {
			return err
		}
	}

	if deck != nil {
		if err := writeDeck(deck, flags.AnkiCSV, outputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to generate Anki file: %v\n", err)
		}
	}

	fmt.Printf("Done! Lessons saved to: %s\n", outputDir)
	return nil
}

func writeDeck(deck *anki.Generator, csv bool, outputDir string) error {
	total, withAudio := deck.Stats()
	if total == 0 {
		return fmt.Errorf("no cards to export")
	}

	if csv {
		if err := deck.GenerateCSV(); err != nil {
			return err
		}
		fmt.Printf("Anki CSV created with %d cards (%d with audio): %s\n",
			total, withAudio, filepath.Join(outputDir, "anki_import.csv"))
		return nil
	}

	deckName := viper.GetString("anki.deck_name")
	path := filepath.Join(outputDir, internal.SanitizeFilename(deckName)+".apkg")
	if err := deck.GenerateAPKG(path, deckName); err != nil {
		return err
	}
	fmt.Printf("Anki package created with %d cards (%d with audio): %s\n", total, withAudio, path)
	return nil
}

func runBot(ctx context.Context) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	proc, providers, err := newProcessor(logger)
	if err != nil {
		return err
	}
	defer providers.Close()

	return bot.Run(ctx, cli.GetBotToken(), proc, botMessageTimeout, logger)
}
