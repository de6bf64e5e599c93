// Package web embeds the chat UI page served at / and /custom_chat.
package web

import _ "embed"

//go:embed templates/custom_chat.html
var ChatPage []byte
