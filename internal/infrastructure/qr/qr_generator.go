package qr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/bapesu/bapesu-api/internal/application/ports"
	"github.com/boombuler/barcode"
	bqr "github.com/boombuler/barcode/qr"
)

var _ ports.QRGenerator = (*Generator)(nil)

// Generator codifica texto en QR (corrección de errores nivel M).
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// GenerateQR devuelve un PNG cuadrado de size x size píxeles.
func (Generator) GenerateQR(content string, size int) ([]byte, error) {
	code, err := bqr.Encode(content, bqr.M, bqr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: codificar: %w", err)
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qr: escalar: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("qr: png: %w", err)
	}
	return buf.Bytes(), nil
}
