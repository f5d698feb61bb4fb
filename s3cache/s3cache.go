/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that keeps
 * responses in Amazon S3, so downloaded game archives survive across runs.
 * It descends from github.com/sourcegraph/s3cache, ported to aws-sdk-go-v2.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const DefaultPrefix = "pgnfetch-cache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Client is the s3 client used for all requests. Init() builds one from
	// the default AWS configuration; callers may replace it afterwards.
	Client *s3.Client

	// Prefix is the top level "directory" objects are written under.
	Prefix string

	bucketName string
	// when set, entries are gzipped on Set and gunzipped on Get and their
	// object keys end in ".gz"
	gzip      bool
	logErrors bool
	ctx       context.Context
}

// New returns a Cache storing objects in bucketName. Init() must be invoked
// on the result before use.
func New(ctx context.Context, bucketName string, gzip bool,
	logErrors bool) *Cache {

	return &Cache{
		Prefix:     DefaultPrefix,
		bucketName: bucketName,
		gzip:       gzip,
		logErrors:  logErrors,
		ctx:        ctx,
	}
}

// Init loads the default AWS configuration (environment, then shared config
// and credentials files) and confirms the bucket can be read and listed.
func (c *Cache) Init() error {
	cfg, err := config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(cfg)

	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w", c.bucketName, err)
	}
	if _, err = c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w", c.bucketName, err)
	}

	return nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	objKey := c.objectKey(key)
	resp, err := c.Client.GetObject(c.ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var apiErr smithy.APIError
		// NoSuchKey is an ordinary miss
		if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
			c.logf("s3cache.get: failed to get %v: %v", objKey, err)
		}
		return nil, false
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logf("s3cache.get: failed to read %v: %v", objKey, err)
		return nil, false
	}
	if c.gzip {
		data, err = gunzip(data)
		if err != nil {
			c.logf("s3cache.get: failed to decompress %v: %v", objKey, err)
			return nil, false
		}
	}

	return data, true
}

// Set stores data under key, replacing any previous entry.
func (c *Cache) Set(key string, data []byte) {
	objKey := c.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	}
	if c.gzip {
		zdata, err := gzipBytes(data)
		if err != nil {
			c.logf("s3cache.set: failed to compress %v: %v", objKey, err)
			return
		}
		data = zdata
		input.ContentEncoding = aws.String("gzip")
	}
	input.Body = bytes.NewReader(data)

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		c.logf("s3cache.set: put failed for %v: %v", objKey, err)
	}
}

func (c *Cache) Delete(key string) {
	objKey := c.objectKey(key)
	_, err := c.Client.DeleteObject(c.ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(objKey),
	})
	if err != nil {
		c.logf("s3cache.delete: delete failed for %v: %v", objKey, err)
	}
}

// objectKey hashes the cache key (a full URL) into a flat object name.
func (c *Cache) objectKey(key string) string {
	sum := md5.Sum([]byte(key))
	objKey := fmt.Sprintf("%v/%v", c.Prefix, hex.EncodeToString(sum[:]))
	if c.gzip {
		objKey += ".gz"
	}

	return objKey
}

func (c *Cache) logf(format string, args ...any) {
	if c.logErrors {
		log.Printf(format, args...)
	}
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gunzip(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	return io.ReadAll(gr)
}
