package interfaces

import "context"

//go:generate mockgen -source=export_publisher_interface.go -destination=mocks/export_publisher_interface_mock.go -package=mock_interfaces

// IExportPublisher ships an exported document somewhere outside the store
// (an S3 bucket, a directory). It returns where the document ended up.
type IExportPublisher interface {
	Publish(ctx context.Context, name string, document []byte) (location string, err error)
}
