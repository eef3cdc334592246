package booking

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// RenderTicketPDF renders a ticket as a printable A4 e-ticket and
// returns the PDF bytes plus a download filename.
func RenderTicketPDF(t Ticket, passengerName string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RAIL E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger     : %s", passengerName),
		fmt.Sprintf("Booking No    : #%d", t.BookingID),
		fmt.Sprintf("Train         : %s", t.TrainName),
		fmt.Sprintf("Route         : %s to %s", t.FromStation, t.ToStation),
		fmt.Sprintf("Booked On     : %s", t.BookingDate.Format("2006-01-02")),
		fmt.Sprintf("Journey Date  : %s", t.JourneyDate.Format("2006-01-02")),
		fmt.Sprintf("Status        : %s", t.Status),
		fmt.Sprintf("Total Fare    : %.2f", t.TotalFare),
		fmt.Sprintf("Payment       : %s (paid %.2f)", t.PaymentStatus, t.AmountPaid),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Seats")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, seat := range t.Seats {
		pdf.Cell(0, 7, fmt.Sprintf("Coach %s (%s)  Seat %s  Fare %.2f",
			seat.CoachNumber, seat.CoachType, seat.SeatNumber, seat.Fare))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Carry a valid photo ID matching the passenger name. This e-ticket covers every seat listed above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", t.BookingID, filenamePart(passengerName))
	return buf.Bytes(), filename, nil
}

func filenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "ticket"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
