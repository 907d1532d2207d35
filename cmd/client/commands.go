// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/models"
)

const usage = `usage: vault-client <command> [flags]

commands:
  register -u USERNAME -e EMAIL -p PASSWORD
  login    -u USERNAME -p PASSWORD
  list     -user USER_ID
  add      -user USER_ID -title TITLE -login LOGIN -p PASSWORD [-url URL] [-notes NOTES] [-category ID] [-favorite]
  trash    -user USER_ID [-empty]
  copy     -user USER_ID -id PASSWORD_ID
  version`

var (
	errUnknownCommand = errors.New("unknown command")
	errRecordNotFound = errors.New("record not found")
)

// cli dispatches subcommands to the API client and prints results to out.
type cli struct {
	client adapter.VaultClient
	out    io.Writer

	// writeClipboard puts text on the system clipboard.
	writeClipboard func(text string) error
}

func newCLI(client adapter.VaultClient, out io.Writer) *cli {
	return &cli{
		client:         client,
		out:            out,
		writeClipboard: clipboard.WriteAll,
	}
}

func (c *cli) run(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(c.out, usage)
		return nil
	}

	ctx := context.Background()
	command, rest := args[0], args[1:]

	switch command {
	case "register":
		return c.register(ctx, rest)
	case "login":
		return c.login(ctx, rest)
	case "list":
		return c.list(ctx, rest)
	case "add":
		return c.add(ctx, rest)
	case "trash":
		return c.trash(ctx, rest)
	case "copy":
		return c.copy(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprintln(c.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %s\n%s", errUnknownCommand, command, usage)
	}
}

func (c *cli) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.StringVar(&req.Username, "u", "", "username")
	fs.StringVar(&req.Email, "e", "", "email")
	fs.StringVar(&req.Password, "p", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := c.client.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "registered %s, user id: %s\n", req.Username, id)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.StringVar(&req.Username, "u", "", "username")
	fs.StringVar(&req.Password, "p", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resp, err := c.client.Login(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "user id: %s\npasswords: %d\ncategories: %d\n",
		resp.User.ID, len(resp.Passwords), len(resp.Categories))
	return nil
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	userID := fs.String("user", "", "owner id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := c.client.ListSecrets(ctx, *userID)
	if err != nil {
		return err
	}

	return c.printRecords(records)
}

func (c *cli) add(ctx context.Context, args []string) error {
	var (
		req                    models.AddSecretRequest
		url, notes, categoryID string
		favorite               bool
	)

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.StringVar(&req.UserID, "user", "", "owner id")
	fs.StringVar(&req.Title, "title", "", "record title")
	fs.StringVar(&req.Username, "login", "", "login stored in the record")
	fs.StringVar(&req.Password, "p", "", "password stored in the record")
	fs.StringVar(&url, "url", "", "address")
	fs.StringVar(&notes, "notes", "", "free-form notes")
	fs.StringVar(&categoryID, "category", "", "category id")
	fs.BoolVar(&favorite, "favorite", false, "mark as favorite")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req.URL = optional(url)
	req.Notes = optional(notes)
	req.CategoryID = optional(categoryID)
	if favorite {
		req.Favorite = &favorite
	}

	id, err := c.client.AddSecret(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "added %s, password id: %s\n", req.Title, id)
	return nil
}

func (c *cli) trash(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trash", flag.ContinueOnError)
	userID := fs.String("user", "", "owner id")
	empty := fs.Bool("empty", false, "permanently delete everything in the trash")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *empty {
		if err := c.client.EmptyTrash(ctx, *userID); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "trash emptied")
		return nil
	}

	records, err := c.client.ListTrash(ctx, *userID)
	if err != nil {
		return err
	}

	return c.printRecords(records)
}

// copy puts the decrypted password of one active record on the clipboard.
func (c *cli) copy(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	userID := fs.String("user", "", "owner id")
	id := fs.String("id", "", "password id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := c.client.ListSecrets(ctx, *userID)
	if err != nil {
		return err
	}

	for _, record := range records {
		if record.ID != *id {
			continue
		}
		if err = c.writeClipboard(record.Password); err != nil {
			return fmt.Errorf("error writing to clipboard: %w", err)
		}
		fmt.Fprintf(c.out, "password of %q copied to clipboard\n", record.Title)
		return nil
	}

	return fmt.Errorf("%w: %s", errRecordNotFound, *id)
}

func (c *cli) printRecords(records []models.SecretRecord) error {
	_, err := fmt.Fprintln(c.out, recordsTable(records))
	return err
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
