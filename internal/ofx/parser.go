// Package ofx imports OFX/QFX bank exports as transaction documents.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"

	"github.com/lenahart/ledgerlens/internal/model"
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

// ParseFile parses an OFX/QFX file into transaction documents owned by
// userID.
func (p *Parser) ParseFile(reader io.Reader, userID string) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions,
					p.convertTransaction(ofxTx, userID, string(stmt.BankAcctFrom.AcctID), "bank transfer"))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions,
					p.convertTransaction(ofxTx, userID, string(stmt.CCAcctFrom.AcctID), "credit card"))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convertTransaction maps an OFX transaction onto a document. OFX signs
// debits negative; the document carries a positive amount and an explicit
// income/expense type instead.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, userID, accountID, paymentMethod string) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()
	txnType := model.TypeExpense
	if amount > 0 {
		txnType = model.TypeIncome
	}
	if amount < 0 {
		amount = -amount
	}

	tx := model.Transaction{
		ID:            string(ofxTx.FiTID),
		UserID:        userID,
		Type:          txnType,
		Amount:        amount,
		Description:   p.extractDescription(ofxTx),
		Recipient:     p.extractRecipient(ofxTx),
		PaymentMethod: paymentMethod,
		Status:        "completed",
		Date:          ofxTx.DtPosted.Time.UTC().Format(time.RFC3339),
	}

	if tx.ID == "" {
		tx.ID = fmt.Sprintf("%s-%s-%.2f", accountID,
			ofxTx.DtPosted.Time.UTC().Format("20060102150405"), amount)
	}

	if accountID != "" {
		tx.Extra = map[string]string{"accountId": accountID}
		tx.ExtraOrder = []string{"accountId"}
	}

	return tx
}

// extractDescription combines the OFX name and memo fields.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	name := strings.TrimSpace(string(tx.Name))
	memo := strings.TrimSpace(string(tx.Memo))

	switch {
	case name == "":
		return memo
	case memo == "" || memo == name:
		return name
	default:
		return name + " - " + memo
	}
}

// extractRecipient tries to get a clean counterparty name from OFX data.
func (p *Parser) extractRecipient(tx ofxgo.Transaction) string {
	// Prefer PAYEE if available (cleaner merchant name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := strings.TrimSpace(string(tx.Name))

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"CHECK CARD ",
		"VISA PURCHASE ",
		"MC PURCHASE ",
		"DEBIT PURCHASE ",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Clean up date patterns like "MM/DD" at the beginning
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}
