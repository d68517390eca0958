// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/root.go
// Summary: Cobra root command.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texeldock/config"
	"github.com/framegrace/texeldock/texelui/adapter"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type options struct {
	logPath  string
	titleBar bool
	split    int
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "texeldock [files...]",
		Short: "Browse files in dockable tab containers",
		Long: `texeldock shows each file as a tab. Files are split between two dock
areas. Drag a tab onto the other area to move it, or drag a title bar to
merge a whole container into the other one.

Keys:
  F2      toggle title bars
  F3      merge the right area into the left
  F4      show every area again
  Ctrl+W  close the current tab
  Esc     cancel a drag
  Ctrl+Q  quit`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, cmd.Flags().Changed("title-bar"))
		},
	}
	cmd.Flags().StringVar(&opts.logPath, "log", filepath.Join(os.TempDir(), "texeldock.log"), "log file path")
	cmd.Flags().BoolVar(&opts.titleBar, "title-bar", false, "show title bars (overrides config)")
	cmd.Flags().IntVar(&opts.split, "split", -1, "number of files for the left area (default: half)")
	return cmd
}

func run(opts options, paths []string, titleBarSet bool) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logFile, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("texeldock starting...")

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: using defaults: %v", err)
	}
	settings := cfg.Dock()
	if titleBarSet {
		settings.TitleBarVisible = opts.titleBar
	}

	docs, err := loadDocuments(paths)
	if err != nil {
		return err
	}

	ws := newWorkspace(settings, cfg.GetString("highlight", "style", ""), docs, opts.split)
	app := adapter.NewUIApp("texeldock", ws.ui)
	app.SetOnResize(ws.resize)
	app.SetOnKey(ws.handleKey)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := app.Run(screen); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Println("texeldock stopped cleanly.")
	return nil
}
