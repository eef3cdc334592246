package booking

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/railtikit/rail-booking/internal/repository"
)

func TestRenderTicketPDF(t *testing.T) {
	ticket := Ticket{
		BookingID:     7,
		TrainID:       5,
		TrainName:     "Padma Express",
		BookingDate:   time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		JourneyDate:   time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
		Status:        "confirmed",
		TotalFare:     800,
		AmountPaid:    800,
		PaymentStatus: "paid",
		Seats: []repository.BookedSeatDetail{
			{SeatID: 12, SeatNumber: "A2", CoachNumber: "KA-1", CoachType: "Shovon", Fare: 400},
			{SeatID: 13, SeatNumber: "A3", CoachNumber: "KA-1", CoachType: "Shovon", Fare: 400},
		},
	}

	pdf, filename, err := RenderTicketPDF(ticket, "Rahim Uddin")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output does not look like a PDF")
	}
	if !strings.HasPrefix(filename, "ETICKET_7_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("filename = %s", filename)
	}
	if strings.ContainsAny(filename, " /") {
		t.Fatalf("filename contains unsafe characters: %s", filename)
	}
}
