// =============================================================================
// Barcode Transaction Processor - XML Report
// =============================================================================
//
// XML STRUCTURE:
//
//   <purchase customer="Jamie" date="2020-01-23" totalItems="4" maxPerCode="2">
//     <product code="BEVG" description="Beverages" count="2" mostCommon="true">
//       <item n="1">GJHGTFBNGDVZJGDIPXVS</item>
//       <item n="2">IHDCZIPWLZJLPDSGNEAH</item>
//     </product>
//     <product code="CANF" description="Canned food" count="1">
//       <item n="3">OUXSCGSYBHQYHNMDQOBL</item>
//     </product>
//     <subtypes code="BEVG">
//       <subtype>TTKYGD</subtype>
//     </subtypes>
//   </purchase>
//
// Item numbering is global across products, in product order.
//
// =============================================================================

package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
)

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// XMLOptions contains options for XML generation.
type XMLOptions struct {
	// Indent is the string used for indentation.
	// Default: "  " (two spaces)
	Indent string

	// IncludeXMLDeclaration determines whether to include the XML declaration.
	// Default: true
	IncludeXMLDeclaration bool
}

// DefaultXMLOptions returns the default generation options.
func DefaultXMLOptions() XMLOptions {
	return XMLOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
	}
}

// =============================================================================
// XML DOCUMENT
// =============================================================================

type xmlPurchase struct {
	XMLName    xml.Name     `xml:"purchase"`
	Customer   string       `xml:"customer,attr"`
	Date       string       `xml:"date,attr"`
	TotalItems int          `xml:"totalItems,attr"`
	MaxPerCode int          `xml:"maxPerCode,attr"`
	Products   []xmlProduct `xml:"product"`
	Subtypes   *xmlSubtypes `xml:"subtypes,omitempty"`
}

type xmlProduct struct {
	Code        string    `xml:"code,attr"`
	Description string    `xml:"description,attr,omitempty"`
	Count       int       `xml:"count,attr"`
	MostCommon  bool      `xml:"mostCommon,attr,omitempty"`
	Items       []xmlItem `xml:"item"`
}

type xmlItem struct {
	N  int    `xml:"n,attr"`
	ID string `xml:",chardata"`
}

type xmlSubtypes struct {
	Code     string   `xml:"code,attr"`
	Subtypes []string `xml:"subtype"`
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// GenerateXML renders the report as an XML document.
func GenerateXML(r *Report) ([]byte, error) {
	return GenerateXMLWithOptions(r, DefaultXMLOptions())
}

// GenerateXMLWithOptions renders the report with custom options.
func GenerateXMLWithOptions(r *Report, options XMLOptions) ([]byte, error) {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(xml.Header)
	}

	xmlBytes, err := xml.MarshalIndent(buildDocument(r), "", options.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal XML: %w", err)
	}

	buffer.Write(xmlBytes)
	buffer.WriteByte('\n')

	return buffer.Bytes(), nil
}

// WriteXML renders the report and writes it to path.
func WriteXML(r *Report, path string) error {
	data, err := GenerateXML(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// buildDocument constructs the XML document structure.
func buildDocument(r *Report) *xmlPurchase {
	doc := &xmlPurchase{
		Customer:   r.Header.CustomerName,
		Date:       r.PurchaseDate(),
		TotalItems: r.Summary.TotalItems,
		MaxPerCode: r.Summary.MaxPerCode,
	}

	itemIndex := 1
	for _, code := range r.Aggregate.Codes() {
		product := xmlProduct{
			Code:        code,
			Description: r.Description(code),
			Count:       r.Aggregate.Count(code),
			MostCommon:  r.IsMostCommon(code),
		}
		for _, id := range r.Aggregate.Items(code) {
			product.Items = append(product.Items, xmlItem{N: itemIndex, ID: id})
			itemIndex++
		}
		doc.Products = append(doc.Products, product)
	}

	if r.TargetCode != "" {
		doc.Subtypes = &xmlSubtypes{Code: r.TargetCode, Subtypes: r.Subtypes}
	}

	return doc
}
