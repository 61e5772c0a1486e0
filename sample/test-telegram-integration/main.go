package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/telegram"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/phone"
)

// Teste manual da integração com o Telegram. Rode com um .env apontando
// para o bot real e um telefone que já abriu conversa com ele:
//
//	go run ./sample/test-telegram-integration
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("❌ TELEGRAM_BOT_TOKEN deve estar configurado no .env")
	}

	rawPhone := os.Getenv("TEST_PHONE")
	if rawPhone == "" {
		log.Fatal("❌ TEST_PHONE deve estar configurado (ex: 11999998888)")
	}

	normalized, err := phone.Normalize(rawPhone, "55")
	if err != nil {
		log.Fatalf("❌ Telefone inválido: %v", err)
	}
	fmt.Printf("📱 Telefone normalizado: %s\n", normalized)

	client := telegram.NewClient(token, os.Getenv("TELEGRAM_BOT_USERNAME"))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	chatID, err := client.DiscoverChatID(ctx, normalized)
	if err != nil {
		fmt.Printf("⚠️  Chat não descoberto (%v)\n", err)
		fmt.Printf("🔗 Envie este link para o contato: %s\n", client.DeepLink(normalized))
		return
	}

	fmt.Printf("✅ chat_id descoberto: %d\n", chatID)

	if err := client.SendMessage(ctx, chatID, "Teste de integração do agente 🤖"); err != nil {
		log.Fatalf("❌ Falha no envio: %v", err)
	}

	fmt.Println("✅ Mensagem enviada com sucesso")
}
