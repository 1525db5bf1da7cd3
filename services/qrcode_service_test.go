// file: services/qrcode_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
)

// Mock encoder function (successful)
func mockQRCodeEncoderSuccess(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return []byte("mock_qr_code_data"), nil
}

// Mock encoder function (failure)
func mockQRCodeEncoderFailure(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return nil, errors.New("QR code generation failed")
}

func TestGenerateQRCode_Success(t *testing.T) {
	data, err := GenerateQRCode("https://academy.example.com/scouting?event=1", 300, mockQRCodeEncoderSuccess)

	assert.NoError(t, err)
	assert.NotNil(t, data)
	assert.Equal(t, "mock_qr_code_data", string(data))
}

func TestGenerateQRCode_EmptyURL(t *testing.T) {
	data, err := GenerateQRCode("", 300, mockQRCodeEncoderSuccess)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "invalid url: must not be empty", err.Error())
}

func TestGenerateQRCode_InvalidSize(t *testing.T) {
	data, err := GenerateQRCode("https://academy.example.com/scouting?event=1", -50, mockQRCodeEncoderSuccess)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "invalid size: must be positive", err.Error())
}

func TestGenerateQRCode_EncoderFails(t *testing.T) {
	data, err := GenerateQRCode("https://academy.example.com/scouting?event=1", 300, mockQRCodeEncoderFailure)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "QR code generation failed", err.Error())
}
