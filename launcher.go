//go:build ignore

// launcher — локальный запуск для разработки: сервер с in-memory историей
// (PostgreSQL не нужен) и сборка CLI-клиента ciphers.
//
//	go run launcher.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"
)

const healthURL = "http://127.0.0.1:8080/health"

func main() {
	fmt.Println("Запуск classic ciphers...")

	clientName := "ciphers"
	if runtime.GOOS == "windows" {
		clientName = "ciphers.exe"
	}

	// сервер на фоне, история в памяти
	server := exec.Command("go", "run", "./cmd/server")
	server.Env = append(os.Environ(), "HISTORY_STORE=memory")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr

	if err := server.Start(); err != nil {
		fmt.Printf("Ошибка запуска сервера: %v\n", err)
		return
	}

	if !waitHealthy(30 * time.Second) {
		fmt.Println("Сервер не ответил на /health, логи: runtime/logs/http.log")
		_ = server.Process.Kill()
		return
	}

	// собираем клиента
	if _, err := os.Stat(clientName); os.IsNotExist(err) {
		fmt.Println("Сборка клиента...")
		build := exec.Command("go", "build", "-o", clientName, "./cmd/ciphers")
		build.Stdout = os.Stdout
		build.Stderr = os.Stderr
		if err := build.Run(); err != nil {
			fmt.Printf("Ошибка сборки клиента: %v\n", err)
		}
	}

	fmt.Println("Сервер запущен на http://127.0.0.1:8080 (swagger: /swagger/index.html)")
	if runtime.GOOS == "windows" {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: .\\ciphers.exe encrypt --remote -c caesar -k 3 -t Attack")
	} else {
		fmt.Println("Данный терминал не закрывай. Открой новый и запускай: ./ciphers encrypt --remote -c caesar -k 3 -t Attack")
	}

	server.Wait()
}

// waitHealthy опрашивает /health, пока сервер не ответит 200 или не выйдет timeout.
func waitHealthy(timeout time.Duration) bool {
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		res, err := client.Get(healthURL)
		if err == nil {
			res.Body.Close()
			if res.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return false
}
