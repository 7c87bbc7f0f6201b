// Package ofx converts OFX/QFX bank statements into ledger records, so a
// monthly card statement can seed the ledger without retyping each line.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"

	"github.com/Veraticus/lightledger/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns spending records. Only
// debits become records; credits and zero amounts are skipped, since the
// ledger tracks spending only. Every imported record lands in the fallback
// category for the user to reclassify.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Record, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var records []model.Record
	var skipped int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				rec, ok := p.convertTransaction(ofxTx)
				if !ok {
					skipped++
					continue
				}
				records = append(records, rec)
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				rec, ok := p.convertTransaction(ofxTx)
				if !ok {
					skipped++
					continue
				}
				records = append(records, rec)
			}
		}
	}

	slog.Info("parsed OFX file", "records", len(records), "skipped", skipped)
	return records, nil
}

// convertTransaction turns one OFX transaction into a record. OFX debits
// carry negative amounts; the ledger stores spending as positive decimals.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction) (model.Record, bool) {
	amount, _ := ofxTx.TrnAmt.Float64()
	if amount >= 0 {
		// Credit or zero, not a spending event.
		return model.Record{}, false
	}

	note := p.extractNote(ofxTx)

	rec := model.Record{
		ID:         uuid.NewString(),
		Amount:     -amount,
		CategoryID: model.CategoryOther,
		Note:       note,
		Date:       ofxTx.DtPosted.Time,
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	if rec.Note == "" {
		rec.Note = model.FallbackCategory().Name
	}
	return rec, true
}

// extractNote picks the most descriptive text available for a transaction.
func (p *Parser) extractNote(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	memo := strings.TrimSpace(string(tx.Memo))
	if memo != "" && (name == "" || isGenericDescription(name)) {
		return memo
	}
	return name
}

// isGenericDescription reports whether a NAME field carries no useful
// merchant information.
func isGenericDescription(name string) bool {
	generic := []string{
		"POS PURCHASE",
		"DEBIT",
		"WITHDRAWAL",
		"PURCHASE",
		"PAYMENT",
		"CHECK",
	}
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, g := range generic {
		if upper == g {
			return true
		}
	}
	return false
}
