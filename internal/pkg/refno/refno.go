// Package refno issues human-facing reference numbers for bookings and invoices.
package refno

import (
	"strings"
	"time"

	"hotel-core/internal/pkg/errs"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

const (
	bookingPrefix = "BK-"
	invoicePrefix = "INV-"
)

type Generator struct {
	node *snowflake.Node
}

// nodeID must be unique per running instance so booking numbers never collide.
func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid snowflake node id %d", nodeID)
	}
	return &Generator{node: node}, nil
}

func (g *Generator) BookingNumber() string {
	return bookingPrefix + strings.ToUpper(g.node.Generate().Base36())
}

// InvoiceNumber has the form INV-YYYYMMDD-XXXXXX.
func (g *Generator) InvoiceNumber(issuedAt time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return invoicePrefix + issuedAt.Format("20060102") + "-" + strings.ToUpper(suffix)
}
