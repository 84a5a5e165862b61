// handlers/files.go
package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
)

const uploadDir = "./uploads"

// UploadFileHandler picks local or GCS storage by environment. Cloud Run sets
// K_SERVICE; otherwise USE_GCS=true or application credentials opt in.
func UploadFileHandler(w http.ResponseWriter, r *http.Request) {
	useGCS := os.Getenv("USE_GCS") == "true" ||
		os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != "" ||
		os.Getenv("K_SERVICE") != ""

	if useGCS {
		UploadFileGCS(w, r)
	} else {
		UploadFileLocal(w, r)
	}
}

func formFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	// 50MB covers manuals and photos attached to work orders
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	return file, header, true
}

func uploadName(original string) string {
	return fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), filepath.Base(original))
}

// UploadFileLocal saves the upload under ./uploads and returns a relative URL
// served by the static file route.
func UploadFileLocal(w http.ResponseWriter, r *http.Request) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		http.Error(w, "failed to create upload directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	file, header, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	filename := uploadName(header.Filename)
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		http.Error(w, "failed to create file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, "failed to save file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":      "/uploads/" + filename,
		"filename": filename,
	})
}

// UploadFileGCS writes the upload to the bucket named by UPLOAD_BUCKET and
// returns the public object URL.
func UploadFileGCS(w http.ResponseWriter, r *http.Request) {
	bucket := os.Getenv("UPLOAD_BUCKET")
	if bucket == "" {
		http.Error(w, "UPLOAD_BUCKET is not configured", http.StatusInternalServerError)
		return
	}

	file, header, ok := formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	ctx := r.Context()
	client, err := storage.NewClient(ctx)
	if err != nil {
		http.Error(w, "failed to create storage client: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer client.Close()

	filename := uploadName(header.Filename)
	obj := client.Bucket(bucket).Object(filename)
	wc := obj.NewWriter(ctx)
	wc.ContentType = header.Header.Get("Content-Type")

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		http.Error(w, "failed to upload file: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if err := wc.Close(); err != nil {
		http.Error(w, "failed to finalize upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":      fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, filename),
		"filename": filename,
	})
}
