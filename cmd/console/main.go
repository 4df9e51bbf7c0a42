package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/treasure-hunter/internal/config"
	"github.com/jwebster45206/treasure-hunter/internal/logger"
	"github.com/jwebster45206/treasure-hunter/pkg/dice"
	"github.com/jwebster45206/treasure-hunter/pkg/game"
	"github.com/jwebster45206/treasure-hunter/pkg/hunter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	w, closeLog, err := logger.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeLog() // Ignore error in defer
	}()
	log := logger.Setup(cfg, w)

	in := bufio.NewReader(os.Stdin)

	fmt.Println("Welcome to TREASURE HUNTER!")
	fmt.Println("Going hunting for the big treasure, eh?")

	name := cfg.HunterName
	if name == "" {
		name = prompt(in, "What's your name, Hunter? ")
	}
	mode := cfg.GameMode
	if mode == "" {
		mode = strings.ToLower(prompt(in, "Mode? (e)asy, (h)ard, (s)amurai or Enter for normal: "))
	}

	settings := game.DefaultSettings(mode)
	if cfg.Toughness >= 0 {
		settings.Toughness = cfg.Toughness
	}
	if cfg.Markdown >= 0 {
		settings.Markdown = cfg.Markdown
	}

	h, err := hunter.New(hunter.HunterSpec{Name: name, Gold: cfg.StartingGold})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create hunter: %v\n", err)
		os.Exit(1)
	}

	src := dice.NewSource()
	if cfg.Seed != 0 {
		src = dice.NewSeededSource(cfg.Seed)
	}

	g, err := game.New(settings, h, game.WithSource(src), game.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	log = logger.WithGameID(log, g.ID.String())

	p := tea.NewProgram(NewConsoleUI(g), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.WithError(log, err).Error("console exited with error")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Info("console closed", "outcome", g.Outcome(), "towns_visited", g.TownsVisited())
}

func prompt(in *bufio.Reader, question string) string {
	fmt.Print(question)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
