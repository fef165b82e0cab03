// busctl is a small management client for the bus ticket booking API.
//
// Usage:
//
//	busctl [flags] list
//	busctl [flags] book <name> <bus> <seat>
//	busctl [flags] get <id>
//	busctl [flags] update <id> <new-name>
//	busctl [flags] cancel <id>
//	busctl [flags] buses
//	busctl [flags] stats
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
)

var (
	baseURL = flag.String("addr", "http://localhost:8080", "base URL of the booking API")
	busFlag = flag.String("bus", "", "filter tickets by bus code (list only)")
	jsonOut = flag.Bool("json", false, "print raw JSON instead of tables")
	timeout = flag.Duration("timeout", 10*time.Second, "request timeout")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cli := client{base: strings.TrimRight(*baseURL, "/"), http: &http.Client{Timeout: *timeout}}

	var err error
	switch args[0] {
	case "list":
		err = cli.listTickets(*busFlag)
	case "book":
		if len(args) != 4 {
			err = fmt.Errorf("usage: busctl book <name> <bus> <seat>")
		} else {
			err = cli.book(args[1], args[2], args[3])
		}
	case "get":
		if len(args) != 2 {
			err = fmt.Errorf("usage: busctl get <id>")
		} else {
			err = cli.get(args[1])
		}
	case "update":
		if len(args) != 3 {
			err = fmt.Errorf("usage: busctl update <id> <new-name>")
		} else {
			err = cli.update(args[1], args[2])
		}
	case "cancel":
		if len(args) != 2 {
			err = fmt.Errorf("usage: busctl cancel <id>")
		} else {
			err = cli.cancel(args[1])
		}
	case "buses":
		err = cli.buses()
	case "stats":
		err = cli.stats()
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "busctl - bus ticket booking management client")
	fmt.Fprintln(os.Stderr, "\ncommands: list, book, get, update, cancel, buses, stats\n\nflags:")
	flag.PrintDefaults()
}

type client struct {
	base string
	http *http.Client
}

func (c client) call(method, path string, body any) (map[string]json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if *jsonOut {
		fmt.Println(string(raw))
	}

	out := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("unexpected response: %s", raw)
		}
	}
	if resp.StatusCode >= 400 {
		var msg string
		_ = json.Unmarshal(out["error"], &msg)
		return out, fmt.Errorf("%s (http %d)", msg, resp.StatusCode)
	}
	return out, nil
}

type ticket struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Bus         string  `json:"bus"`
	Seat        string  `json:"seat"`
	SeatType    string  `json:"seat_type"`
	Fare        float64 `json:"fare"`
	Status      string  `json:"status"`
	BookingTime string  `json:"booking_time"`
}

func (c client) listTickets(bus string) error {
	path := "/api/tickets"
	if bus != "" {
		path += "?bus=" + bus
	}
	out, err := c.call(http.MethodGet, path, nil)
	if err != nil || *jsonOut {
		return err
	}

	var tickets []ticket
	if err := json.Unmarshal(out["tickets"], &tickets); err != nil {
		return err
	}
	if len(tickets) == 0 {
		fmt.Println("no tickets found")
		return nil
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID < tickets[j].ID })

	fmt.Printf("%-5s %-20s %-8s %-6s %-9s %-10s %s\n", "ID", "NAME", "BUS", "SEAT", "CLASS", "STATUS", "BOOKED")
	for _, t := range tickets {
		booked := t.BookingTime
		if len(booked) > 19 {
			booked = booked[:19]
		}
		fmt.Printf("%-5d %-20.20s %-8s %-6s %-9s %-10s %s\n", t.ID, t.Name, t.Bus, t.Seat, t.SeatType, t.Status, booked)
	}
	return nil
}

func (c client) book(name, bus, seat string) error {
	out, err := c.call(http.MethodPost, "/api/tickets", map[string]string{
		"name": name, "bus": bus, "seat": seat,
	})
	if err != nil || *jsonOut {
		return err
	}

	var t ticket
	if err := json.Unmarshal(out["ticket"], &t); err != nil {
		return err
	}
	fmt.Printf("ticket booked: id=%d %s on %s seat %s (%s) fare=%.2f\n", t.ID, t.Name, t.Bus, t.Seat, t.SeatType, t.Fare)
	return nil
}

func (c client) get(id string) error {
	out, err := c.call(http.MethodGet, "/api/tickets/"+id, nil)
	if err != nil || *jsonOut {
		return err
	}
	var t ticket
	if err := json.Unmarshal(out["ticket"], &t); err != nil {
		return err
	}
	fmt.Printf("id=%d name=%s bus=%s seat=%s class=%s fare=%.2f status=%s booked=%s\n",
		t.ID, t.Name, t.Bus, t.Seat, t.SeatType, t.Fare, t.Status, t.BookingTime)
	return nil
}

func (c client) update(id, name string) error {
	_, err := c.call(http.MethodPut, "/api/tickets/"+id, map[string]string{"name": name})
	if err == nil && !*jsonOut {
		fmt.Printf("ticket %s updated\n", id)
	}
	return err
}

func (c client) cancel(id string) error {
	_, err := c.call(http.MethodDelete, "/api/tickets/"+id, nil)
	if err == nil && !*jsonOut {
		fmt.Printf("ticket %s cancelled\n", id)
	}
	return err
}

func (c client) buses() error {
	out, err := c.call(http.MethodGet, "/api/buses", nil)
	if err != nil || *jsonOut {
		return err
	}

	var buses []struct {
		Code          string  `json:"bus_number"`
		TotalSeats    int     `json:"total_seats"`
		Booked        int     `json:"booked_seats"`
		Available     int     `json:"available_seats"`
		OccupancyRate float64 `json:"occupancy_rate"`
	}
	if err := json.Unmarshal(out["buses"], &buses); err != nil {
		return err
	}
	fmt.Printf("%-8s %-6s %-8s %-10s %s\n", "BUS", "SEATS", "BOOKED", "AVAILABLE", "OCCUPANCY")
	for _, b := range buses {
		fmt.Printf("%-8s %-6d %-8d %-10d %.2f%%\n", b.Code, b.TotalSeats, b.Booked, b.Available, b.OccupancyRate)
	}
	return nil
}

func (c client) stats() error {
	out, err := c.call(http.MethodGet, "/api/stats", nil)
	if err != nil || *jsonOut {
		return err
	}
	var s struct {
		TotalTickets     int     `json:"total_tickets"`
		TotalBuses       int     `json:"total_buses"`
		TotalSeats       int     `json:"total_seats"`
		BookedSeats      int     `json:"booked_seats"`
		AvailableSeats   int     `json:"available_seats"`
		OverallOccupancy float64 `json:"overall_occupancy"`
		TotalRevenue     float64 `json:"total_revenue"`
	}
	if err := json.Unmarshal(out["stats"], &s); err != nil {
		return err
	}
	fmt.Printf("tickets:    %d\n", s.TotalTickets)
	fmt.Printf("buses:      %d\n", s.TotalBuses)
	fmt.Printf("seats:      %d booked / %d total (%d free)\n", s.BookedSeats, s.TotalSeats, s.AvailableSeats)
	fmt.Printf("occupancy:  %.2f%%\n", s.OverallOccupancy)
	fmt.Printf("revenue:    %.2f\n", s.TotalRevenue)
	return nil
}
