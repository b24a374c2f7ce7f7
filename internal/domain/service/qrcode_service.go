package service

// QRCodeService renders QR code images. Used to embed the verification link
// as a scannable image in the verification mail.
type QRCodeService interface {
	GenerateLinkQR(link string) ([]byte, error)
}
