package client

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"fairway/config"
)

// StorageClient talks to an S3 compatible object store over plain HTTP with
// v2 request signing. Objects are written publicly readable so the stored
// URL can be served to clients as is.
type StorageClient struct {
	endpoint  string
	bucket    string
	accessKey string
	secretKey string
	publicUrl string
	client    *http.Client
}

func NewStorageClient() *StorageClient {
	cfg := config.Env()
	return &StorageClient{
		endpoint:  cfg.StorageEndpoint,
		bucket:    cfg.StorageBucket,
		accessKey: cfg.StorageAccessKey,
		secretKey: cfg.StorageSecretKey,
		publicUrl: cfg.StoragePublicURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *StorageClient) Upload(objectKey string, contentType string, data []byte) (string, error) {
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectKey), bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-amz-acl", "public-read")
	s.sign(req, objectKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("storage upload failed with status %d", resp.StatusCode)
	}
	return fmt.Sprintf("%s/%s", s.publicUrl, objectKey), nil
}

func (s *StorageClient) Delete(objectKey string) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, objectKey), nil)
	if err != nil {
		return err
	}
	s.sign(req, objectKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return fmt.Errorf("storage delete failed with status %d", resp.StatusCode)
	}
	return nil
}

// sign adds an AWS signature v2 authorization header. The canonical string
// covers the method, content type, date and the bucket scoped resource.
func (s *StorageClient) sign(req *http.Request, objectKey string) {
	date := time.Now().UTC().Format(http.TimeFormat)
	req.Header.Set("Date", date)

	canonical := fmt.Sprintf("%s\n\n%s\n%s\n", req.Method, req.Header.Get("Content-Type"), date)
	if acl := req.Header.Get("x-amz-acl"); acl != "" {
		canonical += fmt.Sprintf("x-amz-acl:%s\n", acl)
	}
	canonical += fmt.Sprintf("/%s/%s", s.bucket, objectKey)

	mac := hmac.New(sha1.New, []byte(s.secretKey))
	mac.Write([]byte(canonical))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	req.Header.Set("Authorization", fmt.Sprintf("AWS %s:%s", s.accessKey, signature))
}
