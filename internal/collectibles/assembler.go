package collectibles

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/domain"
	"github.com/soundvine/collectibles-indexer/internal/logger"
	"github.com/soundvine/collectibles-indexer/internal/providers/opensea"
)

// eventDateLayout is the timestamp format of OpenSea event created_date fields
const eventDateLayout = "2006-01-02T15:04:05.999999"

// Assembler merges adapter output with event context. It owns no network or
// classification logic.
type Assembler struct {
	clock adapter.Clock
}

// NewAssembler creates a new assembler
func NewAssembler(clock adapter.Clock) *Assembler {
	return &Assembler{clock: clock}
}

// ApplyCreationEvents marks collectibles minted by the wallet. A creation
// event means the wallet is the creator rather than a holder, so ownership
// flips off and the creation timestamp is recorded.
func (a *Assembler) ApplyCreationEvents(ctx context.Context, collectibles map[string]*domain.Collectible, events []opensea.Event) {
	for _, event := range events {
		collectible, ok := a.lookup(collectibles, &event.Asset)
		if !ok {
			continue
		}
		collectible.IsOwned = false
		collectible.DateCreated = a.parseEventDate(ctx, event.CreatedDate)
	}
}

// ApplyTransferEvents records the last inbound transfer timestamp on matching
// collectibles. Mint transfers, recognizable by the zero from-address, are
// skipped: they are creations, not transfers.
func (a *Assembler) ApplyTransferEvents(ctx context.Context, collectibles map[string]*domain.Collectible, events []opensea.Event) {
	for _, event := range events {
		if IsFromNullAddress(&event) {
			continue
		}
		collectible, ok := a.lookup(collectibles, &event.Asset)
		if !ok {
			continue
		}
		collectible.IsOwned = true
		transferred := a.parseEventDate(ctx, event.CreatedDate)
		if transferred == nil {
			continue
		}
		if collectible.DateLastTransferred == nil || transferred.After(*collectible.DateLastTransferred) {
			collectible.DateLastTransferred = transferred
		}
	}
}

// IsFromNullAddress reports whether an event originates from the zero address
func IsFromNullAddress(event *opensea.Event) bool {
	return event.FromAccount != nil &&
		strings.EqualFold(event.FromAccount.Address, domain.ETHEREUM_ZERO_ADDRESS)
}

// lookup finds the collectible an event's asset refers to
func (a *Assembler) lookup(collectibles map[string]*domain.Collectible, asset *opensea.Asset) (*domain.Collectible, bool) {
	id := asset.TokenID + ":::" + asset.ContractAddress()
	collectible, ok := collectibles[id]
	return collectible, ok
}

// parseEventDate parses an event timestamp, returning nil on malformed input
func (a *Assembler) parseEventDate(ctx context.Context, value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := a.clock.Parse(eventDateLayout, value)
	if err != nil {
		logger.DebugCtx(ctx, "unparseable event date",
			zap.String("value", value),
			zap.Error(err))
		return nil
	}
	return &parsed
}
