package gateway

// indexHTML is the embedded single-page terminal client. It talks to the
// JSON execute endpoint; the session cookie keeps each browser on its own
// terminal.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <title>termsh</title>
    <style>
        body {
            font-family: monospace;
            background: #1a1a1a;
            color: #fff;
            padding: 20px;
            margin: 0;
        }
        .terminal {
            background: #000;
            padding: 20px;
            border-radius: 5px;
            min-height: 400px;
            max-height: 600px;
            overflow-y: auto;
            margin-bottom: 20px;
        }
        .command { color: #61dafb; }
        .output { color: #ccc; white-space: pre-wrap; }
        .error { color: #ff6b6b; }
        input {
            width: 100%;
            padding: 10px;
            background: #333;
            color: #fff;
            border: none;
            margin: 10px 0;
            font-family: monospace;
        }
        .entry { margin: 5px 0; }
    </style>
</head>
<body>
    <h1>termsh</h1>
    <div class="terminal" id="terminal">
        <div class="entry"><span class="output">Type 'help' for available commands or 'exit' to quit.</span></div>
    </div>
    <input type="text" id="commandInput" placeholder="Enter command..." autofocus>
    <script>
        const terminal = document.getElementById('terminal');
        const input = document.getElementById('commandInput');

        function append(cls, text) {
            const div = document.createElement('div');
            div.className = 'entry';
            const span = document.createElement('span');
            span.className = cls;
            span.textContent = text;
            div.appendChild(span);
            terminal.appendChild(div);
            terminal.scrollTop = terminal.scrollHeight;
        }

        function executeCommand() {
            const command = input.value.trim();
            if (!command) return;
            append('command', '$ ' + command);
            fetch('/execute', {
                method: 'POST',
                headers: {'Content-Type': 'application/json'},
                body: JSON.stringify({command: command})
            })
            .then(response => response.json())
            .then(data => {
                if (data.output) append('output', data.output);
                if (data.error) append('error', 'Error: ' + data.error);
            })
            .catch(error => append('error', 'Network error: ' + error));
            input.value = '';
        }

        input.addEventListener('keypress', function(e) {
            if (e.key === 'Enter') executeCommand();
        });
        input.focus();
    </script>
</body>
</html>
`
