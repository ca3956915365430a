package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleIndex отдает страницу загрузки
func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// Страница загрузки: drag-and-drop или выбор файла, четырехшаговый
// индикатор и статистика сжатия из заголовков ответа. Временная
// ссылка на результат отзывается сразу после запуска скачивания.
const indexHTML = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>pdfshrink — сжатие PDF</title>
<style>
body { font-family: sans-serif; max-width: 640px; margin: 40px auto; color: #222; }
#dropzone { border: 2px dashed #888; border-radius: 8px; padding: 48px; text-align: center; cursor: pointer; }
#dropzone.highlight { border-color: #2a7; background: #f0fff7; }
#progress { height: 8px; background: #eee; border-radius: 4px; margin-top: 16px; display: none; }
#bar { height: 100%; width: 0; background: #2a7; border-radius: 4px; transition: width .3s; }
#status, #stats, #error { margin-top: 12px; }
#error { color: #b00; display: none; }
</style>
</head>
<body>
<h1>Сжатие PDF</h1>
<div id="dropzone">Перетащите PDF сюда или нажмите для выбора файла (до 100 MB)</div>
<input type="file" id="picker" accept=".pdf" hidden>
<div id="progress"><div id="bar"></div></div>
<div id="status"></div>
<div id="stats"></div>
<div id="error"></div>
<script>
const dz = document.getElementById('dropzone');
const picker = document.getElementById('picker');
const bar = document.getElementById('bar');

dz.addEventListener('click', () => picker.click());
dz.addEventListener('dragover', e => { e.preventDefault(); dz.classList.add('highlight'); });
dz.addEventListener('dragleave', () => dz.classList.remove('highlight'));
dz.addEventListener('drop', e => {
  e.preventDefault();
  dz.classList.remove('highlight');
  if (e.dataTransfer.files.length) submit(e.dataTransfer.files[0]);
});
picker.addEventListener('change', () => { if (picker.files.length) submit(picker.files[0]); });

function setProgress(pct, text) {
  document.getElementById('progress').style.display = 'block';
  bar.style.width = pct + '%';
  document.getElementById('status').textContent = text;
}

function fail(msg) {
  document.getElementById('error').style.display = 'block';
  document.getElementById('error').textContent = msg;
  document.getElementById('progress').style.display = 'none';
}

async function submit(file) {
  document.getElementById('error').style.display = 'none';
  document.getElementById('stats').textContent = '';
  setProgress(25, 'Загрузка файла');

  const form = new FormData();
  form.append('pdf', file);

  setProgress(50, 'Сжатие документа');
  let resp;
  try {
    resp = await fetch('/api/pdf/compress', { method: 'POST', body: form });
  } catch (e) {
    fail('Ошибка сети: ' + e);
    return;
  }

  if (!resp.ok) {
    const body = await resp.json().catch(() => ({}));
    fail(body.error || 'Ошибка обработки файла');
    return;
  }

  setProgress(75, 'Сравнение размеров');
  const blob = await resp.blob();

  const skipped = resp.headers.get('X-Compression-Status') !== 'optimized';
  document.getElementById('stats').textContent =
    (skipped ? 'Сжатие пропущено. ' : '') +
    'Размер: ' + resp.headers.get('X-Original-Size-MB') + ' MB → ' +
    resp.headers.get('X-Compressed-Size-MB') + ' MB, уменьшение ' +
    resp.headers.get('X-Reduction-Percent') + '%, коэффициент ' +
    resp.headers.get('X-Compression-Ratio');

  setProgress(100, 'Готово к скачиванию');

  const url = URL.createObjectURL(blob);
  const a = document.createElement('a');
  a.href = url;
  a.download = file.name.replace(/\.pdf$/i, '') + '_compressed.pdf';
  a.click();
  URL.revokeObjectURL(url);
}
</script>
</body>
</html>
`
