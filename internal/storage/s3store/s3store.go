// Пакет s3store — хранение содержимого файлов в S3-совместимом хранилище
// (AWS S3, MinIO) через aws-sdk-go-v2.
package s3store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/bigkaa/checklists/internal/storage/blobstore"
)

// Options — параметры подключения к S3.
type Options struct {
	// Endpoint — базовый URL хранилища; пустой — стандартный endpoint AWS
	Endpoint string
	// Region — регион (обязателен для подписи запросов)
	Region string
	// Bucket — бакет для объектов
	Bucket string
	// AccessKey, SecretKey — статические учётные данные
	AccessKey string
	SecretKey string
	// UsePathStyle — адресация вида {endpoint}/{bucket}/{key} (MinIO)
	UsePathStyle bool
	// HTTPClient — HTTP-клиент; nil — клиент SDK по умолчанию
	HTTPClient *http.Client
}

// Store — blobstore.Store поверх S3.
type Store struct {
	client *s3.Client
	bucket string
}

var _ blobstore.Store = (*Store)(nil)

// New создаёт клиент S3 по параметрам opts.
func New(ctx context.Context, opts Options) (*Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("не задан бакет S3")
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)),
	}
	if opts.HTTPClient != nil {
		loadOpts = append(loadOpts, config.WithHTTPClient(opts.HTTPClient))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации AWS: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
		// MinIO и другие совместимые хранилища не всегда поддерживают
		// контрольные суммы в trailer-заголовках
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &Store{client: client, bucket: opts.Bucket}, nil
}

// Put буферизует содержимое во временный файл с подсчётом SHA-256,
// затем отправляет его одним PutObject с известной длиной.
func (s *Store) Put(ctx context.Context, key string, reader io.Reader) (*blobstore.PutResult, error) {
	if err := blobstore.ValidateKey(key); err != nil {
		return nil, err
	}

	spool, err := os.CreateTemp("", "checklists-upload-*")
	if err != nil {
		return nil, fmt.Errorf("ошибка создания временного файла: %w", err)
	}
	defer func() {
		spool.Close()
		os.Remove(spool.Name())
	}()

	hasher := sha256.New()
	size, err := io.Copy(spool, io.TeeReader(reader, hasher))
	if err != nil {
		return nil, fmt.Errorf("ошибка записи данных: %w", err)
	}
	if _, err := spool.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("ошибка позиционирования временного файла: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          spool,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка записи объекта %s в S3: %w", key, err)
	}

	return &blobstore.PutResult{
		Size:     size,
		Checksum: hex.EncodeToString(hasher.Sum(nil)),
	}, nil
}

// Open возвращает поток объекта. Поток не поддерживает Seek.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := blobstore.ValidateKey(key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", blobstore.ErrNotFound, key)
		}
		return nil, fmt.Errorf("ошибка чтения объекта %s из S3: %w", key, err)
	}
	return out.Body, nil
}

// Delete удаляет объект. S3 не возвращает ошибку для отсутствующего ключа.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := blobstore.ValidateKey(key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("ошибка удаления объекта %s из S3: %w", key, err)
	}
	return nil
}

// CheckReady проверяет доступность бакета через HeadBucket.
func (s *Store) CheckReady() (status string, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return "fail", fmt.Sprintf("S3 бакет %s недоступен: %v", s.bucket, err)
	}
	return "ok", fmt.Sprintf("S3 бакет %s доступен", s.bucket)
}

// isNotFound распознаёт отсутствие объекта: типизированная ошибка NoSuchKey
// или HTTP 404 без тела (HEAD, некоторые совместимые хранилища).
func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return re.HTTPStatusCode() == http.StatusNotFound
	}
	return false
}
