package api

// docsPage is the static API reference served at /docs. The root path
// redirects here.
const docsPage = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>API de Lista de Tareas</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
code { background: #f4f4f4; padding: 0.1rem 0.3rem; }
</style>
</head>
<body>
<h1>API de Lista de Tareas</h1>
<p>Una API simple para gestionar una lista de tareas pendientes.</p>
<table>
<tr><th>Método</th><th>Ruta</th><th>Descripción</th><th>Éxito</th><th>Fallo</th></tr>
<tr><td>POST</td><td><code>/tareas/</code></td><td>Crea una tarea</td><td>201</td><td>422</td></tr>
<tr><td>GET</td><td><code>/tareas/</code></td><td>Lista todas las tareas</td><td>200</td><td>—</td></tr>
<tr><td>GET</td><td><code>/tareas/{id}</code></td><td>Obtiene una tarea</td><td>200</td><td>404</td></tr>
<tr><td>PUT</td><td><code>/tareas/{id}</code></td><td>Actualiza una tarea</td><td>200</td><td>404, 422</td></tr>
<tr><td>DELETE</td><td><code>/tareas/{id}</code></td><td>Elimina una tarea</td><td>204</td><td>404</td></tr>
</table>
<h2>Tarea</h2>
<p><code>id</code> (int), <code>titulo</code> (string, 3-100),
<code>descripcion</code> (string|null, máx. 500),
<code>fecha_creacion</code> (ISO-8601 UTC),
<code>fecha_finalizacion</code> (ISO-8601 UTC|null),
<code>completada</code> (bool, derivado: fecha_finalizacion presente y &le; ahora).</p>
<h2>Actualización parcial (PUT)</h2>
<p>Todos los campos son opcionales: <code>titulo</code>,
<code>descripcion</code> (null borra la descripción),
<code>establecer_completada</code> (true completa, false reabre),
<code>nueva_fecha_finalizacion</code>. Combinar
<code>establecer_completada: false</code> con una
<code>nueva_fecha_finalizacion</code> es inválido.</p>
</body>
</html>
`
