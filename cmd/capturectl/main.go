package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	capturespb "github.com/capturedesk/capturedesk/gen/proto/captures/v1"
	"github.com/capturedesk/capturedesk/internal/pipeline"
)

func main() {
	app := &cli.App{
		Name:  "capturectl",
		Usage: "operate the capture enrichment daemon",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:8080",
				Usage:   "daemon gRPC address",
				EnvVars: []string{"CAPTURED_ADDR"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 2 * time.Minute,
				Usage: "per-call timeout",
			},
		},
		Commands: []*cli.Command{
			processCmd(),
			inboxCmd(),
			drainCmd(),
			reprocessCmd(),
			listCmd(),
			getCmd(),
			exportCmd(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func dial(c *cli.Context) (capturespb.CaptureServiceClient, *grpc.ClientConn, context.Context, context.CancelFunc, error) {
	conn, err := grpc.NewClient(c.String("addr"), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("connect %s: %w", c.String("addr"), err)
	}
	ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
	return capturespb.NewCaptureServiceClient(conn), conn, ctx, cancel, nil
}

func processCmd() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "process one capture with priority",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url"},
			&cli.StringFlag{Name: "text"},
			&cli.StringFlag{Name: "file", Usage: "payload path on the daemon host"},
			&cli.StringFlag{Name: "type", Usage: "input type (WEB, TEXT, IMAGE, ...)"},
			&cli.StringFlag{Name: "title"},
			&cli.StringFlag{Name: "session"},
			&cli.StringFlag{Name: "location", Usage: "place name or \"lat,lng\""},
			&cli.StringFlag{Name: "place-id"},
		},
		Action: func(c *cli.Context) error {
			client, conn, ctx, cancel, err := dial(c)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer cancel()

			capture := &capturespb.Capture{
				Url:         c.String("url"),
				Text:        c.String("text"),
				PayloadPath: c.String("file"),
				InputType:   c.String("type"),
				Title:       c.String("title"),
				SessionId:   c.String("session"),
				PlaceId:     c.String("place-id"),
				Source:      "capturectl",
			}
			if loc := c.String("location"); loc != "" {
				if coord, ok := pipeline.ParseLatLng(loc); ok {
					capture.Lat, capture.Lng = coord.Lat, coord.Lng
				} else {
					capture.LocationName = loc
				}
			}
			if capture.Url == "" && capture.Text == "" && capture.PayloadPath == "" {
				return errors.New("one of --url, --text, --file is required")
			}

			resp, err := client.ProcessCapture(ctx, &capturespb.ProcessCaptureRequest{Capture: capture})
			if err != nil {
				return err
			}
			printItem(resp.GetItem())
			return nil
		},
	}
}

func inboxCmd() *cli.Command {
	return &cli.Command{
		Name:  "inbox",
		Usage: "scan the inbox roots and drain the results",
		Action: func(c *cli.Context) error {
			client, conn, ctx, cancel, err := dial(c)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer cancel()

			resp, err := client.ProcessInbox(ctx, &capturespb.ProcessInboxRequest{})
			if err != nil {
				return err
			}
			fmt.Printf("ingested %d, processed %d\n", resp.GetIngested(), resp.GetProcessed())
			return nil
		},
	}
}

func drainCmd() *cli.Command {
	return &cli.Command{
		Name:  "drain",
		Usage: "process the stored capture backlog",
		Action: func(c *cli.Context) error {
			client, conn, ctx, cancel, err := dial(c)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer cancel()

			resp, err := client.DrainPending(ctx, &capturespb.DrainPendingRequest{})
			if err != nil {
				return err
			}
			fmt.Printf("processed %d captures\n", resp.GetProcessed())
			return nil
		},
	}
}

func reprocessCmd() *cli.Command {
	return &cli.Command{
		Name:  "reprocess",
		Usage: "re-run enrichment for items created since a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "since", Required: true, Usage: "YYYY-MM-DD"},
		},
		Action: func(c *cli.Context) error {
			client, conn, ctx, cancel, err := dial(c)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer cancel()

			stream, err := client.ReprocessSince(ctx, &capturespb.ReprocessSinceRequest{
				SinceDate: c.String("since"),
			})
			if err != nil {
				return err
			}
			for {
				p, err := stream.Recv()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				if msg := p.GetMessage(); msg != "" {
					fmt.Println(msg)
				} else {
					fmt.Printf("%d/%d\n", p.GetDone(), p.GetTotal())
				}
			}
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list processed items",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status"},
			&cli.IntFlag{Name: "limit", Value: 50},
		},
		Action: func(c *cli.Context) error {
			client, conn, ctx, cancel, err := dial(c)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer cancel()

			resp, err := client.ListItems(ctx, &capturespb.ListItemsRequest{
				Status: strings.ToUpper(c.String("status")),
				Limit:  int32(c.Int("limit")),
			})
			if err != nil {
				return err
			}
			for _, it := range resp.GetItems() {
				fmt.Printf("%s  %-15s  %s\n", it.GetId(), it.GetStatus(), it.GetTitle())
			}
			return nil
		},
	}
}

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "show one item",
		ArgsUsage: "<item-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("item id required")
			}
			client, conn, ctx, cancel, err := dial(c)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer cancel()

			resp, err := client.GetItem(ctx, &capturespb.GetItemRequest{Id: c.Args().First()})
			if err != nil {
				return err
			}
			printItem(resp.GetItem())
			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "export items to an XLSX workbook",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "status"},
			&cli.StringFlag{Name: "from", Usage: "YYYY-MM-DD"},
			&cli.StringFlag{Name: "to", Usage: "YYYY-MM-DD"},
			&cli.StringFlag{Name: "out", Value: "items.xlsx"},
		},
		Action: func(c *cli.Context) error {
			client, conn, ctx, cancel, err := dial(c)
			if err != nil {
				return err
			}
			defer conn.Close()
			defer cancel()

			resp, err := client.ExportItems(ctx, &capturespb.ExportItemsRequest{
				Status:   strings.ToUpper(c.String("status")),
				FromDate: c.String("from"),
				ToDate:   c.String("to"),
			})
			if err != nil {
				return err
			}
			out := c.String("out")
			if err := os.WriteFile(out, resp.GetXlsx(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", out, len(resp.GetXlsx()))
			return nil
		},
	}
}

func printItem(it *capturespb.Item) {
	if it == nil {
		return
	}
	fmt.Printf("id:       %s\n", it.GetId())
	fmt.Printf("status:   %s\n", it.GetStatus())
	fmt.Printf("title:    %s\n", it.GetTitle())
	if it.GetSummary() != "" {
		fmt.Printf("summary:  %s\n", it.GetSummary())
	}
	if it.GetEntityType() != "" {
		fmt.Printf("type:     %s\n", it.GetEntityType())
	}
	if len(it.GetTags()) > 0 {
		fmt.Printf("tags:     %s\n", strings.Join(it.GetTags(), ", "))
	}
	for _, st := range it.GetStatements() {
		fmt.Printf("stmt:     [%s] %s\n", st.GetEvidence(), st.GetText())
	}
	if it.GetPlaceName() != "" {
		fmt.Printf("place:    %s\n", it.GetPlaceName())
	}
	if it.GetSessionId() != "" {
		fmt.Printf("session:  %s\n", it.GetSessionId())
	}
	if it.GetUrl() != "" {
		fmt.Printf("url:      %s\n", it.GetUrl())
	}
}
