// Package slicer parses iTunes Connect financial reports and splits sales
// by the Apple subsidiaries which are legally accountable for them. It may
// be used to help generating Reverse Charge invoices for accounting and in
// order to correctly issue Recapitulative Statements mandatory in the EU.
//
// The core functionalities include:
//   - Report Aggregation: Scanning a directory of tab-delimited financial
//     reports and accumulating sold quantities and amounts per country and
//     product into an add-only ledger.
//   - Currency Conversion: Parsing the exchange-rate and withholding-tax
//     listing that accompanies the reports and converting every foreign
//     amount into a single reporting currency with exact decimal arithmetic.
//   - Corporation Statements: Grouping the aggregated countries under the
//     accountable Apple subsidiary and producing a per-corporation statement
//     with product lines and subtotals.
//
// This package serves as the foundational logic for the `apple-slicer`
// command-line tool.
package slicer
