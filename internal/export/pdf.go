package export

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"eventhub-client/internal/models"
)

// PDFService handles PDF generation for tickets
type PDFService struct{}

// NewPDFService creates a new PDF service
func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateTicketsPDF renders one page per ticket, each with the event
// details, the attendee, and a scannable QR code of the ticket code.
func (s *PDFService) GenerateTicketsPDF(tickets []models.TicketResponse, event *models.Event, order *models.OrderResponse) ([]byte, error) {
	if len(tickets) == 0 {
		return nil, fmt.Errorf("no tickets to render")
	}

	w := newPDFWriter()

	// Objects 1-4 are fixed: catalog, pages, regular and bold font.
	// Each ticket then contributes three objects: QR image, content
	// stream, page.
	pageRefs := make([]string, len(tickets))
	for i := range tickets {
		pageRefs[i] = fmt.Sprintf("%d 0 R", 7+3*i)
	}

	w.obj(1, "<<\n/Type /Catalog\n/Pages 2 0 R\n>>")
	w.obj(2, fmt.Sprintf("<<\n/Type /Pages\n/Kids [%s]\n/Count %d\n>>",
		strings.Join(pageRefs, " "), len(tickets)))
	w.obj(3, "<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n>>")
	w.obj(4, "<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica-Bold\n>>")

	for i, ticket := range tickets {
		imageNum := 5 + 3*i
		contentNum := 6 + 3*i
		pageNum := 7 + 3*i

		size, pixels, err := qrImage(ticket.TicketCode)
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code for ticket %s: %w", ticket.TicketCode, err)
		}
		imageDict := fmt.Sprintf("/Type /XObject\n/Subtype /Image\n/Width %d\n/Height %d\n/ColorSpace /DeviceGray\n/BitsPerComponent 8\n/Filter /FlateDecode", size, size)
		if err := w.streamObj(imageNum, imageDict, pixels); err != nil {
			return nil, err
		}

		content := s.ticketPageContent(ticket, event, order, i+1, len(tickets))
		if err := w.streamObj(contentNum, "", []byte(content)); err != nil {
			return nil, err
		}

		w.obj(pageNum, fmt.Sprintf("<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 612 792]\n/Contents %d 0 R\n/Resources <<\n/Font <<\n/F1 3 0 R\n/F2 4 0 R\n>>\n/XObject <<\n/Qr %d 0 R\n>>\n>>\n>>", contentNum, imageNum))
	}

	return w.finish(1), nil
}

// ticketPageContent builds the content stream for a single ticket page.
func (s *PDFService) ticketPageContent(ticket models.TicketResponse, event *models.Event, order *models.OrderResponse, page, total int) string {
	var stream strings.Builder

	// Header band.
	stream.WriteString("0.149 0.388 0.922 rg\n")
	stream.WriteString("0 732 612 60 re f\n")

	stream.WriteString("BT\n")
	stream.WriteString("1 1 1 rg\n")
	stream.WriteString("/F2 22 Tf\n")
	stream.WriteString("50 754 Td\n")
	stream.WriteString(fmt.Sprintf("(%s) Tj\n", s.escape(s.truncate(event.Name, 44))))
	stream.WriteString("ET\n")

	stream.WriteString("BT\n")
	stream.WriteString("0 0 0 rg\n")
	stream.WriteString("/F1 11 Tf\n")
	stream.WriteString("50 700 Td\n")
	stream.WriteString("14 TL\n")

	line := func(text string) {
		stream.WriteString(fmt.Sprintf("(%s) Tj T*\n", s.escape(text)))
	}
	bold := func(text string) {
		stream.WriteString("/F2 11 Tf\n")
		stream.WriteString(fmt.Sprintf("(%s) Tj T*\n", s.escape(text)))
		stream.WriteString("/F1 11 Tf\n")
	}

	if !event.StartTime.IsZero() {
		line("Date: " + event.StartTime.Format("Monday, January 2, 2006 at 3:04 PM"))
	}
	if event.Venue != nil {
		location := event.Venue.Name
		if event.Venue.Address != "" {
			location += ", " + event.Venue.Address
		}
		if event.Venue.City != "" {
			location += ", " + event.Venue.City
		}
		line("Location: " + s.truncate(location, 80))
	}
	line("")

	bold(fmt.Sprintf("TICKET %d OF %d", page, total))
	line("Attendee: " + ticket.AttendeeName)
	if ticket.AttendeeEmail != "" {
		line("Email: " + ticket.AttendeeEmail)
	}
	if ticket.TicketType != nil {
		line("Ticket Type: " + ticket.TicketType.Name)
	}
	if ticket.SeatLabel != "" {
		line("Seat: " + ticket.SeatLabel)
	}
	if ticket.Showtime != nil && !ticket.Showtime.StartTime.IsZero() {
		line("Showtime: " + ticket.Showtime.StartTime.Format("Jan 2, 2006 3:04 PM"))
	}
	line("Ticket Code: " + ticket.TicketCode)
	line("")

	if order != nil {
		bold("ORDER DETAILS")
		line(fmt.Sprintf("Order Number: #%d", order.ID))
		line("Purchase Date: " + order.CreatedAt.Format("January 2, 2006 at 3:04 PM"))
		line(fmt.Sprintf("Total Amount: %s %.2f", order.Currency, float64(order.TotalAmount)/100))
	}
	stream.WriteString("ET\n")

	// QR code, centered below the details.
	stream.WriteString("q\n180 0 0 180 216 240 cm\n/Qr Do\nQ\n")

	stream.WriteString("BT\n")
	stream.WriteString("/F1 9 Tf\n")
	stream.WriteString("50 180 Td\n")
	stream.WriteString("12 TL\n")
	line("Present this ticket at the event entrance. Each ticket admits one person.")
	line("Generated on: " + time.Now().Format("January 2, 2006 at 3:04 PM"))
	stream.WriteString("ET\n")

	return stream.String()
}

// qrImage encodes the ticket code as a square grayscale pixel buffer,
// zlib-compressed for embedding as a FlateDecode image object.
func qrImage(code string) (int, []byte, error) {
	qr, err := qrcode.New(code, qrcode.Medium)
	if err != nil {
		return 0, nil, err
	}

	bitmap := qr.Bitmap()
	size := len(bitmap)
	pixels := make([]byte, 0, size*size)
	for _, row := range bitmap {
		for _, black := range row {
			if black {
				pixels = append(pixels, 0x00)
			} else {
				pixels = append(pixels, 0xFF)
			}
		}
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(pixels); err != nil {
		return 0, nil, err
	}
	if err := zw.Close(); err != nil {
		return 0, nil, err
	}
	return size, buf.Bytes(), nil
}

// truncate shortens a string to a maximum length
func (s *PDFService) truncate(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	return str[:maxLen-3] + "..."
}

// escape escapes special characters for PDF text strings
func (s *PDFService) escape(str string) string {
	str = strings.ReplaceAll(str, "\\", "\\\\")
	str = strings.ReplaceAll(str, "(", "\\(")
	str = strings.ReplaceAll(str, ")", "\\)")
	str = strings.ReplaceAll(str, "\r", "")
	return str
}

// TicketsFilename builds the download filename for an order's ticket PDF.
func TicketsFilename(order *models.OrderResponse) string {
	return fmt.Sprintf("tickets_order_%d.pdf", order.ID)
}

// pdfWriter assembles a PDF document, tracking byte offsets so the xref
// table points at the real object positions.
type pdfWriter struct {
	buf     bytes.Buffer
	offsets map[int]int
	maxNum  int
}

func newPDFWriter() *pdfWriter {
	w := &pdfWriter{offsets: make(map[int]int)}
	w.buf.WriteString("%PDF-1.4\n")
	return w
}

// obj writes a numbered object with a dictionary or literal body.
func (w *pdfWriter) obj(num int, body string) {
	w.offsets[num] = w.buf.Len()
	if num > w.maxNum {
		w.maxNum = num
	}
	fmt.Fprintf(&w.buf, "%d 0 obj\n%s\nendobj\n", num, body)
}

// streamObj writes a numbered stream object. Extra dictionary entries
// beyond /Length may be passed in dict.
func (w *pdfWriter) streamObj(num int, dict string, data []byte) error {
	w.offsets[num] = w.buf.Len()
	if num > w.maxNum {
		w.maxNum = num
	}
	fmt.Fprintf(&w.buf, "%d 0 obj\n<<\n", num)
	if dict != "" {
		w.buf.WriteString(dict)
		w.buf.WriteString("\n")
	}
	fmt.Fprintf(&w.buf, "/Length %d\n>>\nstream\n", len(data))
	w.buf.Write(data)
	w.buf.WriteString("\nendstream\nendobj\n")
	return nil
}

// finish writes the xref table and trailer and returns the document.
func (w *pdfWriter) finish(root int) []byte {
	xrefStart := w.buf.Len()
	fmt.Fprintf(&w.buf, "xref\n0 %d\n", w.maxNum+1)
	w.buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= w.maxNum; num++ {
		fmt.Fprintf(&w.buf, "%010d 00000 n \n", w.offsets[num])
	}
	fmt.Fprintf(&w.buf, "trailer\n<<\n/Size %d\n/Root %d 0 R\n>>\nstartxref\n%d\n%%%%EOF\n", w.maxNum+1, root, xrefStart)
	return w.buf.Bytes()
}
