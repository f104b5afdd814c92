package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"phonebook/contact"
	"phonebook/pkg/config"
	"phonebook/storage"
	"time"
)

var errUsage = errors.New("invalid arguments")

const usage = `Usage:
  To add:  phonebook <name> <number>
  To list: phonebook [phonebook]
`

func main() {
	var timeout time.Duration
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "Deadline for the whole command")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	repo, closeStore, err := storage.NewContactRepository(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open contact store:", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := run(ctx, contact.NewUsecase(repo), flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Invalid arguments.")
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc contact.Service, args []string, out io.Writer) error {
	switch {
	case len(args) == 0 || (len(args) == 1 && args[0] == "phonebook"):
		return listContacts(ctx, svc, out)
	case len(args) == 2:
		return addContact(ctx, svc, args[0], args[1], out)
	default:
		return errUsage
	}
}

func listContacts(ctx context.Context, svc contact.Service, out io.Writer) error {
	contacts, err := svc.ListContacts(ctx)
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	fmt.Fprintln(out, "phonebook:")
	for _, c := range contacts {
		fmt.Fprintf(out, "%s %s\n", c.Name, c.Number)
	}
	return nil
}

func addContact(ctx context.Context, svc contact.Service, name, number string, out io.Writer) error {
	c, err := svc.AddContact(ctx, contact.Contact{Name: name, Number: number})
	if err != nil {
		return fmt.Errorf("add contact: %w", err)
	}

	fmt.Fprintf(out, "Added %s %s to phonebook\n", c.Name, c.Number)
	return nil
}
