/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const s3Scheme = "s3://"

// WritePgn concatenates blobs verbatim, in order, into dst. dst is either a
// local path or an s3://bucket/key URI.
func WritePgn(ctx context.Context, dst string, blobs []string) error {
	data := strings.Join(blobs, "")

	bucket, key, isS3, err := parseS3URI(dst)
	if err != nil {
		return err
	}
	if !isS3 {
		if err := os.WriteFile(dst, []byte(data), 0644); err != nil {
			return fmt.Errorf("pgnio.write: %w", err)
		}
		return nil
	}

	client, err := newS3Client(ctx)
	if err != nil {
		return err
	}
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(data),
		ContentType: aws.String(PgnContentType),
	})
	if err != nil {
		return fmt.Errorf("pgnio.write: put %v failed: %w", dst, err)
	}

	return nil
}

// ReadPgn returns the contents of src, a local path or s3://bucket/key URI.
func ReadPgn(ctx context.Context, src string) (string, error) {
	bucket, key, isS3, err := parseS3URI(src)
	if err != nil {
		return "", err
	}
	if !isS3 {
		data, err := os.ReadFile(src)
		if err != nil {
			return "", fmt.Errorf("pgnio.read: %w", err)
		}
		return string(data), nil
	}

	client, err := newS3Client(ctx)
	if err != nil {
		return "", err
	}
	resp, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("pgnio.read: get %v failed: %w", src, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("pgnio.read: reading %v: %w", src, err)
	}

	return string(data), nil
}

func newS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("pgnio: failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// parseS3URI splits s3://bucket/key. isS3 is false for anything else, which
// callers treat as a local path.
func parseS3URI(uri string) (bucket string, key string, isS3 bool, err error) {
	if !strings.HasPrefix(uri, s3Scheme) {
		return "", "", false, nil
	}
	rest := strings.TrimPrefix(uri, s3Scheme)
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" {
		return "", "", true, fmt.Errorf("pgnio: malformed s3 uri %q; expected s3://bucket/key", uri)
	}

	return bucket, key, true, nil
}
