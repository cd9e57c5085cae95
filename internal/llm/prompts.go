package llm

import (
	"fmt"
	"strings"

	"github.com/lenahart/ledgerlens/internal/model"
)

// CategorizationPrompt asks the oracle to label every exported row with
// one of the fixed categories, keyed by transaction identifier.
func CategorizationPrompt(exportCSV string) string {
	var sb strings.Builder

	sb.WriteString("Analyze these transactions and categorize each one into exactly ONE of these categories:\n")
	for _, category := range model.Categories {
		fmt.Fprintf(&sb, "- %s\n", category)
	}

	sb.WriteString("\nTRANSACTION DATA:\n")
	sb.WriteString(exportCSV)

	sb.WriteString("\nFor each transaction, return a JSON object mapping the transaction _id to its category.\n")
	sb.WriteString("Return ONLY valid JSON in this exact format (no markdown, no text):\n\n")
	sb.WriteString("{\n    \"id1\": \"Category Name\",\n    \"id2\": \"Category Name\"\n}\n\n")
	sb.WriteString("Analyze all transactions and categorize each one.")

	return sb.String()
}

// PlanPrompt asks the oracle for a natural-language multi-goal savings
// plan. The goal and spending blocks are pre-formatted deterministically
// so identical inputs produce an identical prompt.
func PlanPrompt(goalsBlock, spendingBlock, exportCSV string) string {
	var sb strings.Builder

	sb.WriteString("Analyze the complete transaction data and create a detailed savings plan in plain language.\n\n")
	sb.WriteString("GOALS:\n")
	sb.WriteString(goalsBlock)
	sb.WriteString("\n\nSPENDING SUMMARY (last 30 days):\n")
	sb.WriteString(spendingBlock)
	sb.WriteString("\n\nCOMPLETE TRANSACTION DATA (CSV):\n")
	sb.WriteString(exportCSV)
	sb.WriteString("\nINSTRUCTIONS:\n")
	sb.WriteString("- Give specific numbers for monthly and weekly savings needed for each goal\n")
	sb.WriteString("- Prioritize goals by deadline and priority (high priority first)\n")
	sb.WriteString("- Suggest specific categories to cut spending from, based on the actual transactions\n")
	sb.WriteString("- Keep the response natural and conversational, formatted as text, not JSON\n")
	sb.WriteString("- Reference actual spending amounts from the transaction data\n\n")
	sb.WriteString("Provide the plan now:")

	return sb.String()
}

// InsightsPrompt asks the oracle for spending insights, alerts, and
// suggestions as a strict JSON object.
func InsightsPrompt(exportCSV string) string {
	var sb strings.Builder

	sb.WriteString("Analyze these financial transactions and identify spending patterns.\n\n")
	sb.WriteString("TRANSACTION DATA (CSV):\n")
	sb.WriteString(exportCSV)
	sb.WriteString("\nReturn ONLY valid JSON in this exact format (no markdown, no text):\n\n")
	sb.WriteString("{\n")
	sb.WriteString("    \"keyInsights\": [\"...\"],\n")
	sb.WriteString("    \"alerts\": [\"...\"],\n")
	sb.WriteString("    \"suggestions\": [\"...\"]\n")
	sb.WriteString("}\n")

	return sb.String()
}
