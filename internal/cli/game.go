package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour/internal/api/request"
	"github.com/mcoot/connectfour/internal/api/response"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGamePlaceCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var token1, token2 string

	cmd := &cobra.Command{
		Use:   "create <player1> <player2>",
		Short: "Create a game (player1 is red and moves first by default)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGameRequest{
				Player1: request.Player{Name: args[0], Token: token1},
				Player2: request.Player{Name: args[1], Token: token2},
			}
			var result response.Game

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&token1, "token1", "", "Token for player1: red or yellow")
	cmd.Flags().StringVar(&token2, "token2", "", "Token for player2: red or yellow")
	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a game and its board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			var result response.Game

			if err := client.Get(fmt.Sprintf("/api/v1/games/%d", id), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "place <id> <column>",
		Short: "Drop a token into a column (0-6)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGameID(args[0])
			if err != nil {
				return err
			}

			column, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid column: %w", err)
			}

			if player == "" {
				player = cfg.Player
			}
			if player == "" {
				return errors.New("player is required: pass --as or set C4_PLAYER")
			}

			req := request.PlaceTokenRequest{Player: player, Column: &column}
			var result response.Game

			if err := client.Post(fmt.Sprintf("/api/v1/games/%d/tokens", id), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "as", "", "Name of the player making the move (env: C4_PLAYER)")
	return cmd
}

func parseGameID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid game id %q", s)
	}
	return id, nil
}
